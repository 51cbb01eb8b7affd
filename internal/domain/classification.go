package domain

import "time"

// ClassificationResult is the full enriched result for a single product:
// origin analysis plus category, sourcing advice, and the optional sales
// estimate.
type ClassificationResult struct {
	ProductID string `json:"product_id"`

	Origin *OriginResult `json:"origin"`

	// Category is the guessed product category (electronics, apparel, home,
	// toys, general).
	Category string `json:"category"`

	// Sourcing holds alternative-sourcing advice for the product's category.
	Sourcing *SourcingProfile `json:"sourcing,omitempty"`

	// EstimatedMonthlySales is derived from BestSellerRank, or from the
	// category's typical rank when the product carries none.
	EstimatedMonthlySales int `json:"estimated_monthly_sales,omitempty"`

	ClassifierVersion string    `json:"classifier_version"`
	ProcessingTimeMs  int64     `json:"processing_time_ms"`
	ClassifiedAt      time.Time `json:"classified_at"`
}

// SourcingProfile describes sourcing characteristics for an industry
// category, including non-China manufacturing alternatives.
type SourcingProfile struct {
	Name           string   `json:"name"             yaml:"name"`
	Alternatives   []string `json:"alternatives"     yaml:"common_alternatives"`
	LaborCostIndex float64  `json:"labor_cost_index" yaml:"labor_cost_index"`
	LeadTime       string   `json:"lead_time"        yaml:"lead_time"`
	Considerations []string `json:"considerations"   yaml:"considerations"`
}

// ClassificationHistory is a persisted record of one classification.
type ClassificationHistory struct {
	ID             int64     `db:"id"              json:"id"`
	ProductID      string    `db:"product_id"      json:"product_id"`
	Title          string    `db:"title"           json:"title"`
	MadeInChina    string    `db:"made_in_china"   json:"made_in_china"`
	Confidence     float64   `db:"confidence"      json:"confidence"`
	Vulnerability  string    `db:"vulnerability"   json:"vulnerability"`
	LikelyProvince string    `db:"likely_province" json:"likely_province,omitempty"`
	LikelyCountry  string    `db:"likely_country"  json:"likely_country,omitempty"`
	ProductionType string    `db:"production_type" json:"production_type,omitempty"`
	SupplierTier   string    `db:"supplier_tier"   json:"supplier_tier,omitempty"`
	Category       string    `db:"category"        json:"category"`
	Version        string    `db:"version"         json:"version"`
	ProcessingMs   int64     `db:"processing_ms"   json:"processing_ms"`
	ClassifiedAt   time.Time `db:"classified_at"   json:"classified_at"`
}
