package classifier

import (
	"context"
	"fmt"

	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/embed"
	"github.com/tariffhunter/origin-classifier/internal/geo"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

// Score blend weights and outcome thresholds. These are fixed constants of
// the classification contract, not tuning knobs.
const (
	similarityWeight = 0.7
	keywordWeight    = 0.3
	yesThreshold     = 0.65
	unclearThreshold = 0.4
)

// Embedder produces one fixed-length vector per input text.
type Embedder interface {
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}

// PlaceRecognizer reports recognized place-name mentions grouped by country.
type PlaceRecognizer interface {
	Countries(text string) []geo.CountryMentions
}

// OriginClassifier answers the "made in China" question for product text.
// It holds no mutable state; each call is pure given its inputs, the fixed
// phrase tables, and the embedder.
type OriginClassifier struct {
	embedder Embedder
	places   PlaceRecognizer
	log      logger.Logger
}

// NewOriginClassifier creates an origin classifier. The embedder is the only
// collaborator that can fail; the recognizer operates on plain strings.
func NewOriginClassifier(embedder Embedder, places PlaceRecognizer, log logger.Logger) *OriginClassifier {
	return &OriginClassifier{
		embedder: embedder,
		places:   places,
		log:      log,
	}
}

// Classify analyzes title and description and returns the tri-state origin
// outcome with secondary details. It never returns an error: an embedding
// failure degrades to the Unknown outcome with confidence 0.
func (oc *OriginClassifier) Classify(ctx context.Context, title, description string) *domain.OriginResult {
	text := NormalizeText(title + " " + description)

	combined, err := oc.chinaScore(ctx, text)
	if err != nil {
		oc.log.Warn("similarity computation unavailable, reporting unknown origin",
			logger.Error(err))
		return &domain.OriginResult{
			MadeInChina:         domain.OriginUnknown,
			Confidence:          0,
			TariffVulnerability: domain.VulnerabilityUnknown,
		}
	}

	result := oc.decide(combined)
	result.TariffVulnerability = domain.VulnerabilityFor(result.MadeInChina)

	if result.MadeInChina == domain.OriginYes {
		result.China = oc.chinaDetails(text)
	} else {
		result.Other = oc.otherOrigin(text)
	}

	return result
}

// chinaScore computes the combined score C = 0.7·S + 0.3·K, where S is the
// maximum cosine similarity between the text and the china phrases and K is
// the literal phrase-hit ratio.
func (oc *OriginClassifier) chinaScore(ctx context.Context, text string) (float64, error) {
	vectors, err := oc.embedder.Encode(ctx, append([]string{text}, chinaPhrases...))
	if err != nil {
		return 0, err
	}
	if len(vectors) != len(chinaPhrases)+1 {
		return 0, fmt.Errorf("embedder returned %d vectors, want %d", len(vectors), len(chinaPhrases)+1)
	}

	maxSimilarity := -1.0
	for _, phraseVec := range vectors[1:] {
		if sim := embed.Cosine(vectors[0], phraseVec); sim > maxSimilarity {
			maxSimilarity = sim
		}
	}

	return similarityWeight*maxSimilarity + keywordWeight*phraseHitRatio(text), nil
}

// decide maps the combined score to an outcome and confidence.
func (oc *OriginClassifier) decide(combined float64) *domain.OriginResult {
	switch {
	case combined > yesThreshold:
		return &domain.OriginResult{MadeInChina: domain.OriginYes, Confidence: clamp01(combined)}
	case combined > unclearThreshold:
		return &domain.OriginResult{MadeInChina: domain.OriginUnclear, Confidence: clamp01(combined)}
	default:
		return &domain.OriginResult{MadeInChina: domain.OriginNo, Confidence: clamp01(1 - combined)}
	}
}

// chinaDetails extracts secondary attributes for a Yes outcome.
func (oc *OriginClassifier) chinaDetails(text string) *domain.ChinaDetails {
	details := &domain.ChinaDetails{
		FactoryMentioned:  containsAny(text, factoryKeywords),
		SupplierMentioned: containsAny(text, supplierKeywords),
		OriginPhrases:     extractOriginPhrases(text),
		ProductionType:    matchKeywordRules(text, productionTypeRules, domain.ProductionUnknown),
		SupplierTier:      matchKeywordRules(text, supplierTierRules, domain.SupplierTierUnknown),
	}

	for _, group := range oc.places.Countries(text) {
		if group.Code != geo.CountryCodeChina {
			continue
		}
		for _, mention := range group.Mentions {
			if chinaProvinces[mention.Name] {
				details.LikelyProvince = mention.Name
				break
			}
			if details.LikelyProvince == "" && chinaProvinces[mention.Province] {
				details.LikelyProvince = mention.Province
			}
		}
		break
	}

	return details
}

// otherOrigin returns the first mentioned non-China country with its city
// mentions, or Unknown when no such country appears.
func (oc *OriginClassifier) otherOrigin(text string) *domain.OtherOrigin {
	for _, group := range oc.places.Countries(text) {
		if group.Code == geo.CountryCodeChina {
			continue
		}
		var cities []string
		for _, mention := range group.Mentions {
			if mention.Kind == geo.KindCity {
				cities = append(cities, mention.Name)
			}
		}
		return &domain.OtherOrigin{LikelyCountry: group.Country, LikelyCities: cities}
	}
	return &domain.OtherOrigin{LikelyCountry: domain.OriginUnknown}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
