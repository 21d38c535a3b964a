package agent

import "github.com/quickserve/crew-assistant/backend/internal/analysis/profile"

// buildSuggestions derives up to three follow-up chips from the final profile
// state. Chips keep the insertion order of the checks below and never repeat.
func (s *Service) buildSuggestions(p profile.Profile) []string {
	var chips []string
	seen := make(map[string]bool)
	add := func(chip string) {
		if !seen[chip] {
			seen[chip] = true
			chips = append(chips, chip)
		}
	}

	if p.MealPeriod == profile.PeriodBreakfast {
		add("Show breakfast sandwiches")
	} else {
		add("Recommend a combo meal")
	}

	if p.Dietary[profile.LowCalorie] {
		add("Find options under 450 calories")
	} else if p.Dietary[profile.HighProtein] {
		add("Suggest high-protein picks")
	}

	if p.PartySize == profile.PartyFamily {
		add("Build a family order")
	}

	if p.Location != nil {
		add("Check a different city")
	} else {
		add("Find store hours near me")
	}

	add("See current McDonald's deals")

	if len(chips) > 3 {
		chips = chips[:3]
	}
	return chips
}
