package sales

import "testing"

func TestEstimateMonthlySales(t *testing.T) {
	tests := []struct {
		name string
		rank int
		want int
	}{
		{"zero rank is unknown", 0, 0},
		{"negative rank is unknown", -5, 0},
		{"top band lower edge", 1, 10000},
		{"top band upper edge", 100, 10000},
		{"second band", 450, 5000},
		{"mid band", 7500, 1000},
		{"last band", 250000, 100},
		{"beyond table floors out", 750000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateMonthlySales(tt.rank); got != tt.want {
				t.Errorf("EstimateMonthlySales(%d) = %d, want %d", tt.rank, got, tt.want)
			}
		})
	}
}

func TestTypicalRank(t *testing.T) {
	if got := TypicalRank("electronics"); got != 5000 {
		t.Errorf("TypicalRank(electronics) = %d, want 5000", got)
	}
	if got := TypicalRank("gadgets"); got != TypicalRank("general") {
		t.Errorf("TypicalRank(gadgets) = %d, want general fallback %d", got, TypicalRank("general"))
	}
}

func TestEstimateFromTypicalRank(t *testing.T) {
	// The category fallback path: typical rank feeds the same band table.
	if got := EstimateMonthlySales(TypicalRank("general")); got != 500 {
		t.Errorf("estimate for general typical rank = %d, want 500", got)
	}
	if got := EstimateMonthlySales(TypicalRank("electronics")); got != 2500 {
		t.Errorf("estimate for electronics typical rank = %d, want 2500", got)
	}
}
