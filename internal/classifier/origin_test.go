package classifier

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/geo"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/testhelpers"
)

func newOriginClassifier(embedder Embedder) *OriginClassifier {
	return NewOriginClassifier(embedder, geo.NewRecognizer(), logger.NewNop())
}

func TestClassifyOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		similarity  float64
		title       string
		description string
		wantOutcome string
	}{
		{
			name:        "high similarity with literal phrase is yes",
			similarity:  0.95,
			title:       "Wireless Earbuds",
			description: "Made in China. Ships from our Shenzhen warehouse.",
			wantOutcome: domain.OriginYes,
		},
		{
			name:        "mid similarity without phrases is unclear",
			similarity:  0.6,
			title:       "Stainless Steel Water Bottle",
			description: "Imported. Supplier details on request.",
			wantOutcome: domain.OriginUnclear,
		},
		{
			name:        "low similarity is no",
			similarity:  0.1,
			title:       "Handcrafted Olive Wood Cutting Board",
			description: "Made in Portugal by artisans in Lisbon.",
			wantOutcome: domain.OriginNo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: tt.similarity})

			result := oc.Classify(context.Background(), tt.title, tt.description)

			if result.MadeInChina != tt.wantOutcome {
				t.Errorf("MadeInChina = %q, want %q", result.MadeInChina, tt.wantOutcome)
			}
			if result.Confidence < 0 || result.Confidence > 1 {
				t.Errorf("Confidence = %v, want within [0, 1]", result.Confidence)
			}
			if result.TariffVulnerability != domain.VulnerabilityFor(tt.wantOutcome) {
				t.Errorf("TariffVulnerability = %q, want %q",
					result.TariffVulnerability, domain.VulnerabilityFor(tt.wantOutcome))
			}
		})
	}
}

func TestClassifyCombinedScore(t *testing.T) {
	// One literal phrase hit ("made in china") out of nine, similarity 0.95:
	// C = 0.7*0.95 + 0.3*(1/9).
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.95})

	result := oc.Classify(context.Background(), "Widget", "made in china")

	want := 0.7*0.95 + 0.3/9.0
	if math.Abs(result.Confidence-want) > 1e-6 {
		t.Errorf("Confidence = %v, want %v", result.Confidence, want)
	}
	if result.MadeInChina != domain.OriginYes {
		t.Errorf("MadeInChina = %q, want %q", result.MadeInChina, domain.OriginYes)
	}
}

func TestClassifyNoOutcomeInvertsConfidence(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.2})

	result := oc.Classify(context.Background(), "Ceramic Vase", "Hand painted pottery.")

	want := 1 - 0.7*0.2
	if math.Abs(result.Confidence-want) > 1e-6 {
		t.Errorf("Confidence = %v, want %v", result.Confidence, want)
	}
}

func TestClassifyEmbedderFailure(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Err: errors.New("connection refused")})

	result := oc.Classify(context.Background(), "Widget", "Made in China")

	if result.MadeInChina != domain.OriginUnknown {
		t.Errorf("MadeInChina = %q, want %q", result.MadeInChina, domain.OriginUnknown)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
	if result.TariffVulnerability != domain.VulnerabilityUnknown {
		t.Errorf("TariffVulnerability = %q, want %q",
			result.TariffVulnerability, domain.VulnerabilityUnknown)
	}
	if result.China != nil || result.Other != nil {
		t.Error("expected no secondary details on embedder failure")
	}
}

func TestClassifyChinaDetails(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.95})

	result := oc.Classify(context.Background(),
		"OEM Bluetooth Speaker",
		"Produced by our factory in Shenzhen, Guangdong. Direct manufacturer pricing.")

	if result.MadeInChina != domain.OriginYes {
		t.Fatalf("MadeInChina = %q, want %q", result.MadeInChina, domain.OriginYes)
	}
	if result.China == nil {
		t.Fatal("expected China details on a Yes outcome")
	}
	if result.Other != nil {
		t.Error("expected no Other details on a Yes outcome")
	}

	details := result.China
	if !details.FactoryMentioned {
		t.Error("FactoryMentioned = false, want true")
	}
	if details.SupplierMentioned {
		t.Error("SupplierMentioned = true, want false")
	}
	if details.LikelyProvince != "guangdong" {
		t.Errorf("LikelyProvince = %q, want %q", details.LikelyProvince, "guangdong")
	}
	if details.ProductionType != domain.ProductionOEM {
		t.Errorf("ProductionType = %q, want %q", details.ProductionType, domain.ProductionOEM)
	}
	if details.SupplierTier != domain.SupplierTier1 {
		t.Errorf("SupplierTier = %q, want %q", details.SupplierTier, domain.SupplierTier1)
	}
	if details.OriginPhrases == "" {
		t.Error("OriginPhrases is empty, want extracted phrase")
	}
}

func TestClassifyTierPriorityWithCompetingKeywords(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.95})

	result := oc.Classify(context.Background(),
		"Power Bank", "OEM factory in Shenzhen, Guangdong province, trading company export.")

	if result.MadeInChina != domain.OriginYes {
		t.Fatalf("MadeInChina = %q, want %q", result.MadeInChina, domain.OriginYes)
	}
	if result.China.ProductionType != domain.ProductionOEM {
		t.Errorf("ProductionType = %q, want %q", result.China.ProductionType, domain.ProductionOEM)
	}
	// Factory outranks trading company even though both appear.
	if result.China.SupplierTier != domain.SupplierTier1 {
		t.Errorf("SupplierTier = %q, want %q", result.China.SupplierTier, domain.SupplierTier1)
	}
	if result.China.LikelyProvince != "guangdong" {
		t.Errorf("LikelyProvince = %q, want guangdong", result.China.LikelyProvince)
	}
}

func TestClassifyProvinceFromCity(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.95})

	result := oc.Classify(context.Background(), "Phone Case", "Made in China, ships from Yiwu.")

	if result.China == nil {
		t.Fatal("expected China details")
	}
	if result.China.LikelyProvince != "zhejiang" {
		t.Errorf("LikelyProvince = %q, want %q", result.China.LikelyProvince, "zhejiang")
	}
}

func TestClassifyOtherOrigin(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.1})

	result := oc.Classify(context.Background(),
		"Handcrafted Olive Wood Cutting Board",
		"Made in Portugal by artisans in Lisbon.")

	if result.MadeInChina != domain.OriginNo {
		t.Fatalf("MadeInChina = %q, want %q", result.MadeInChina, domain.OriginNo)
	}
	if result.Other == nil {
		t.Fatal("expected Other details on a No outcome")
	}
	if result.Other.LikelyCountry != "Portugal" {
		t.Errorf("LikelyCountry = %q, want %q", result.Other.LikelyCountry, "Portugal")
	}
	if len(result.Other.LikelyCities) != 1 || result.Other.LikelyCities[0] != "lisbon" {
		t.Errorf("LikelyCities = %v, want [lisbon]", result.Other.LikelyCities)
	}
}

func TestClassifyOtherOriginUnknownCountry(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.1})

	result := oc.Classify(context.Background(), "Ceramic Vase", "Hand painted pottery.")

	if result.Other == nil {
		t.Fatal("expected Other details on a No outcome")
	}
	if result.Other.LikelyCountry != domain.OriginUnknown {
		t.Errorf("LikelyCountry = %q, want %q", result.Other.LikelyCountry, domain.OriginUnknown)
	}
}

func TestClassifyConfidenceClamped(t *testing.T) {
	// Similarity 1 plus every literal phrase drives the score to the maximum.
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 1})

	text := "made in china manufactured in china product of china shenzhen guangzhou " +
		"yiwu chinese supplier factory in china produced in china"
	result := oc.Classify(context.Background(), "Widget", text)

	if result.MadeInChina != domain.OriginYes {
		t.Errorf("MadeInChina = %q, want %q", result.MadeInChina, domain.OriginYes)
	}
	if result.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1", result.Confidence)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	oc := newOriginClassifier(&testhelpers.StubEmbedder{Similarity: 0.8})

	first := oc.Classify(context.Background(), "USB Hub", "Shipped from our Guangzhou facility.")
	second := oc.Classify(context.Background(), "USB Hub", "Shipped from our Guangzhou facility.")

	if first.MadeInChina != second.MadeInChina || first.Confidence != second.Confidence {
		t.Errorf("repeated classification differs: (%q, %v) vs (%q, %v)",
			first.MadeInChina, first.Confidence, second.MadeInChina, second.Confidence)
	}
}
