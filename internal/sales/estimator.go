// Package sales estimates monthly sales volume from a best-seller rank using
// a fixed rank-band lookup table.
package sales

// bsrBand maps an inclusive rank range to an estimated monthly sales volume.
type bsrBand struct {
	minRank int
	maxRank int
	sales   int
}

// bsrBands is evaluated in order; ranks beyond the last band fall back to
// the floor estimate.
var bsrBands = []bsrBand{
	{1, 100, 10000},
	{101, 1000, 5000},
	{1001, 5000, 2500},
	{5001, 10000, 1000},
	{10001, 50000, 500},
	{50001, 100000, 250},
	{100001, 500000, 100},
}

// floorEstimate is the monthly sales estimate for ranks past the last band.
const floorEstimate = 50

// EstimateMonthlySales returns the estimated monthly sales for a best-seller
// rank. Non-positive ranks return 0 (unknown).
func EstimateMonthlySales(rank int) int {
	if rank <= 0 {
		return 0
	}
	for _, band := range bsrBands {
		if rank >= band.minRank && rank <= band.maxRank {
			return band.sales
		}
	}
	return floorEstimate
}

// categoryTypicalRanks holds the typical best-seller rank per product
// category, used as the estimate basis when a product's rank is unknown.
var categoryTypicalRanks = map[string]int{
	"electronics": 5000,
	"apparel":     10000,
	"home":        8000,
	"toys":        15000,
	"general":     20000,
}

// TypicalRank returns the typical rank for a category, defaulting to
// general.
func TypicalRank(category string) int {
	if rank, ok := categoryTypicalRanks[category]; ok {
		return rank
	}
	return categoryTypicalRanks["general"]
}
