package domain

// Origin outcome constants for the "made in China" question.
const (
	OriginYes     = "Yes"
	OriginNo      = "No"
	OriginUnclear = "Unclear"
	OriginUnknown = "Unknown"
)

// Tariff vulnerability constants, derived from the origin outcome.
const (
	VulnerabilityHigh    = "High"
	VulnerabilityMedium  = "Medium"
	VulnerabilityLow     = "Low"
	VulnerabilityUnknown = "Unknown"
)

// Production relationship types inferred from listing text.
const (
	ProductionOEM          = "OEM"
	ProductionODM          = "ODM"
	ProductionPrivateLabel = "Private Label"
	ProductionUnknown      = "Unknown"
)

// Supplier tier labels inferred from listing text.
const (
	SupplierTier1       = "Tier 1 (Manufacturer)"
	SupplierTier2       = "Tier 2 (Trading Company)"
	SupplierTier3       = "Tier 3 (Distributor)"
	SupplierTierUnknown = "Unknown"
)

// OriginResult is the outcome of the China-origin analysis for one product.
// Exactly one of China/Other is set, and only when the outcome is Yes or
// No/Unclear respectively. An Unknown outcome carries neither.
type OriginResult struct {
	MadeInChina string  `json:"made_in_china"`
	Confidence  float64 `json:"confidence"`

	// TariffVulnerability maps the outcome to High/Medium/Low/Unknown.
	TariffVulnerability string `json:"tariff_vulnerability"`

	China *ChinaDetails `json:"china_details,omitempty"`
	Other *OtherOrigin  `json:"other_origin,omitempty"`
}

// ChinaDetails holds secondary attributes extracted when the outcome is Yes.
type ChinaDetails struct {
	LikelyProvince    string `json:"likely_province,omitempty"`
	FactoryMentioned  bool   `json:"factory_mentioned"`
	SupplierMentioned bool   `json:"supplier_mentioned"`
	OriginPhrases     string `json:"origin_phrases,omitempty"`
	ProductionType    string `json:"production_type"`
	SupplierTier      string `json:"supplier_tier"`
}

// OtherOrigin holds the best-guess origin when the outcome is not Yes.
type OtherOrigin struct {
	LikelyCountry string   `json:"likely_country"`
	LikelyCities  []string `json:"likely_cities,omitempty"`
}

// VulnerabilityFor maps an origin outcome to a tariff vulnerability level.
func VulnerabilityFor(outcome string) string {
	switch outcome {
	case OriginYes:
		return VulnerabilityHigh
	case OriginUnclear:
		return VulnerabilityMedium
	case OriginNo:
		return VulnerabilityLow
	default:
		return VulnerabilityUnknown
	}
}
