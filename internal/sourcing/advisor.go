// Package sourcing recommends non-China manufacturing alternatives per
// product category, from industry profiles loaded at startup.
package sourcing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

// Advisor serves sourcing profiles keyed by category. Profiles are loaded
// once and read-only thereafter.
type Advisor struct {
	profiles map[string]*domain.SourcingProfile
	log      logger.Logger
}

// NewAdvisor loads industry profiles from the YAML file at path. If path is
// empty or the file does not exist, the built-in default profiles are used.
func NewAdvisor(path string, log logger.Logger) (*Advisor, error) {
	profiles := defaultProfiles()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.Info("sourcing profiles file not found, using defaults",
				logger.String("path", path))
		case err != nil:
			return nil, fmt.Errorf("read sourcing profiles %s: %w", path, err)
		default:
			loaded := make(map[string]*domain.SourcingProfile)
			if err := yaml.Unmarshal(data, &loaded); err != nil {
				return nil, fmt.Errorf("parse sourcing profiles: %w", err)
			}
			for category, profile := range loaded {
				profiles[category] = profile
			}
			log.Info("sourcing profiles loaded",
				logger.String("path", path),
				logger.Int("profiles", len(loaded)))
		}
	}

	return &Advisor{profiles: profiles, log: log}, nil
}

// Profile returns the sourcing profile for a category, falling back to the
// general profile for unknown categories.
func (a *Advisor) Profile(category string) *domain.SourcingProfile {
	if profile, ok := a.profiles[category]; ok {
		return profile
	}
	return a.profiles["general"]
}

// Categories lists the known profile categories.
func (a *Advisor) Categories() []string {
	categories := make([]string, 0, len(a.profiles))
	for category := range a.profiles {
		categories = append(categories, category)
	}
	return categories
}

// defaultProfiles are used when no profiles file is configured.
func defaultProfiles() map[string]*domain.SourcingProfile {
	return map[string]*domain.SourcingProfile{
		"general": {
			Name:           "General Products",
			Alternatives:   []string{"Vietnam", "India", "Mexico"},
			LaborCostIndex: 0.8,
			LeadTime:       "4-6 weeks",
			Considerations: []string{
				"General manufacturing capabilities required",
				"Moderate quality expectations",
			},
		},
		"electronics": {
			Name:           "Consumer Electronics",
			Alternatives:   []string{"Vietnam", "Taiwan", "Malaysia"},
			LaborCostIndex: 1.1,
			LeadTime:       "6-10 weeks",
			Considerations: []string{
				"Component supply chains remain concentrated in Asia",
				"Certified assembly lines needed for regulated products",
			},
		},
		"apparel": {
			Name:           "Apparel and Textiles",
			Alternatives:   []string{"Bangladesh", "Vietnam", "Turkey"},
			LaborCostIndex: 0.6,
			LeadTime:       "4-8 weeks",
			Considerations: []string{
				"Fabric sourcing may still route through China",
				"Compliance audits common for large retail buyers",
			},
		},
		"home": {
			Name:           "Home and Kitchen",
			Alternatives:   []string{"India", "Vietnam", "Poland"},
			LaborCostIndex: 0.75,
			LeadTime:       "5-8 weeks",
			Considerations: []string{
				"Bulky goods favour near-shore freight economics",
			},
		},
		"toys": {
			Name:           "Toys and Games",
			Alternatives:   []string{"Vietnam", "Indonesia", "Mexico"},
			LaborCostIndex: 0.7,
			LeadTime:       "6-9 weeks",
			Considerations: []string{
				"Safety certification required in most destination markets",
			},
		},
	}
}
