package geo

import "strings"

// maxNameWords is the longest gazetteer entry in words.
const maxNameWords = 3

// Mention is one recognized place name.
type Mention struct {
	Name        string // normalized name as found in the gazetteer
	Kind        string // city, province, or country
	CountryCode string // ISO alpha-2, lowercase
	Country     string // display name
	Province    string // set for Chinese cities and provinces
}

// CountryMentions groups the mentions found for one country, preserving the
// order in which they appeared in the text.
type CountryMentions struct {
	Code     string
	Country  string
	Mentions []Mention
}

// Recognizer finds place-name mentions in text.
type Recognizer struct{}

// NewRecognizer creates a place-name recognizer over the built-in gazetteer.
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Extract scans text left to right and returns every distinct place mention
// in order of first appearance. Longer names win over shorter ones at the
// same position ("kuala lumpur" before "kuala").
func (r *Recognizer) Extract(text string) []Mention {
	words := strings.Fields(Fold(text))

	mentions := make([]Mention, 0, 4)
	seen := make(map[string]bool)

	for i := 0; i < len(words); {
		matched := 0
		for n := maxNameWords; n >= 1; n-- {
			if i+n > len(words) {
				continue
			}
			candidate := strings.Join(words[i:i+n], " ")
			info, ok := gazetteer[candidate]
			if !ok {
				continue
			}
			key := info.kind + ":" + candidate
			if !seen[key] {
				seen[key] = true
				mentions = append(mentions, Mention{
					Name:        candidate,
					Kind:        info.kind,
					CountryCode: info.code,
					Country:     info.country,
					Province:    info.province,
				})
			}
			matched = n
			break
		}
		if matched > 0 {
			i += matched
		} else {
			i++
		}
	}

	return mentions
}

// Countries groups mentions by country code, preserving first-appearance
// order of both countries and the mentions within each country.
func (r *Recognizer) Countries(text string) []CountryMentions {
	mentions := r.Extract(text)

	index := make(map[string]int)
	grouped := make([]CountryMentions, 0, 2)
	for _, m := range mentions {
		pos, ok := index[m.CountryCode]
		if !ok {
			pos = len(grouped)
			index[m.CountryCode] = pos
			grouped = append(grouped, CountryMentions{Code: m.CountryCode, Country: m.Country})
		}
		grouped[pos].Mentions = append(grouped[pos].Mentions, m)
	}

	return grouped
}
