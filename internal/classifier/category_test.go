package classifier

import "testing"

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"electronics from title", "USB-C Cable 2m", "Braided nylon.", CategoryElectronics},
		{"apparel", "Summer Dress", "Lightweight cotton.", CategoryApparel},
		{"home", "Ceramic Vase", "Modern decor piece.", CategoryHome},
		{"toys", "Building Blocks", "STEM toy for kids.", CategoryToys},
		{"general fallback", "Garden Hose", "50ft expandable.", CategoryGeneral},
		{"electronics beats home on order", "Kitchen Timer", "Electronic display.", CategoryElectronics},
		{"case insensitive", "CHARGER", "", CategoryElectronics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuessCategory(tt.title, tt.description); got != tt.want {
				t.Errorf("GuessCategory(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}
