// Package domain defines the core types shared across the origin
// classification service.
package domain

// Product is a product listing to classify. Title and description are free
// text; the remaining fields are optional context carried through to the
// classification result and history.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price,omitempty"`
	URL         string  `json:"url,omitempty"`

	// BestSellerRank, when known, feeds the monthly sales estimate.
	// Zero means unknown.
	BestSellerRank int `json:"best_seller_rank,omitempty"`
}
