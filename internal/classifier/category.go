package classifier

// Category constants.
const (
	CategoryElectronics = "electronics"
	CategoryApparel     = "apparel"
	CategoryHome        = "home"
	CategoryToys        = "toys"
	CategoryGeneral     = "general"
)

// categoryRules map trigger keywords to a category, first match wins.
var categoryRules = []keywordRule{
	{keywords: []string{"electronic", "cable", "charger"}, label: CategoryElectronics},
	{keywords: []string{"clothing", "shirt", "dress"}, label: CategoryApparel},
	{keywords: []string{"home", "kitchen", "decor"}, label: CategoryHome},
	{keywords: []string{"toy", "game", "play"}, label: CategoryToys},
}

// GuessCategory classifies product text into a coarse category used for
// sourcing profiles and sales baselines. Text is normalized before matching.
func GuessCategory(title, description string) string {
	text := NormalizeText(title + " " + description)
	return matchKeywordRules(text, categoryRules, CategoryGeneral)
}
