package classifier

import (
	"regexp"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/tariffhunter/origin-classifier/internal/domain"
)

// chinaPhrases are the China-indicating phrases used for both the embedding
// similarity score and the literal keyword-hit ratio. The list is fixed;
// changing it shifts every combined score.
var chinaPhrases = []string{
	"made in china",
	"manufactured in china",
	"product of china",
	"shenzhen",
	"guangzhou",
	"yiwu",
	"chinese supplier",
	"factory in china",
	"produced in china",
}

// chinaProvinces enumerates the provinces and municipalities reported as
// likely_province. Only these ten are ever returned.
var chinaProvinces = map[string]bool{
	"guangdong": true,
	"zhejiang":  true,
	"jiangsu":   true,
	"shandong":  true,
	"fujian":    true,
	"shanghai":  true,
	"beijing":   true,
	"tianjin":   true,
	"chongqing": true,
	"sichuan":   true,
}

var factoryKeywords = []string{"factory", "manufacturer", "facility", "works", "plant"}

var supplierKeywords = []string{"supplier", "vendor", "distributor", "wholesaler"}

// originPhrasePatterns extract "made in X"-style phrases. Text is already
// normalized, so the optional colon in "origin:" never appears in practice
// but is kept for callers passing raw text.
var originPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)made in ([\w\s]+)`),
	regexp.MustCompile(`(?i)manufactured in ([\w\s]+)`),
	regexp.MustCompile(`(?i)produced in ([\w\s]+)`),
	regexp.MustCompile(`(?i)factory in ([\w\s]+)`),
	regexp.MustCompile(`(?i)origin:? ([\w\s]+)`),
	regexp.MustCompile(`(?i)sourced from ([\w\s]+)`),
}

// keywordRule maps a set of trigger substrings to a label. Rules are
// evaluated top to bottom and the first match wins, so order is part of the
// contract.
type keywordRule struct {
	keywords []string
	label    string
}

var productionTypeRules = []keywordRule{
	{keywords: []string{"oem"}, label: domain.ProductionOEM},
	{keywords: []string{"odm"}, label: domain.ProductionODM},
	{keywords: []string{"private label", "white label"}, label: domain.ProductionPrivateLabel},
}

var supplierTierRules = []keywordRule{
	{keywords: []string{"manufacturer", "factory"}, label: domain.SupplierTier1},
	{keywords: []string{"trading company", "export company"}, label: domain.SupplierTier2},
	{keywords: []string{"distributor", "wholesaler"}, label: domain.SupplierTier3},
}

// phraseMatcher scans normalized text for china phrases in a single pass.
// It is shared by every classification, so only the thread-safe matching
// entry point may be used on it.
var phraseMatcher = ahocorasick.NewStringMatcher(chinaPhrases)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// NormalizeText lowercases, trims, and strips every rune that is neither a
// word character nor whitespace.
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return nonWordPattern.ReplaceAllString(text, "")
}

// phraseHitRatio returns the fraction of china phrases present as exact
// substrings of text.
func phraseHitRatio(text string) float64 {
	hits := phraseMatcher.MatchThreadSafe([]byte(text))
	return float64(len(hits)) / float64(len(chinaPhrases))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// matchKeywordRules evaluates rules in order and returns the first matching
// label, or fallback when nothing matches.
func matchKeywordRules(text string, rules []keywordRule, fallback string) string {
	for _, rule := range rules {
		if containsAny(text, rule.keywords) {
			return rule.label
		}
	}
	return fallback
}

// extractOriginPhrases unions all origin-phrase pattern captures, de-duplicated
// in first-seen order and joined with "; ". Empty string means no matches.
func extractOriginPhrases(text string) string {
	var phrases []string
	seen := make(map[string]bool)
	for _, pattern := range originPhrasePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			phrase := strings.TrimSpace(match[1])
			if phrase == "" || seen[phrase] {
				continue
			}
			seen[phrase] = true
			phrases = append(phrases, phrase)
		}
	}
	return strings.Join(phrases, "; ")
}
