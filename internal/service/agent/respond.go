package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/analysis/intent"
	"github.com/quickserve/crew-assistant/backend/internal/analysis/profile"
	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
)

// buildMenuResponse ranks the menu for the utterance and renders the top
// picks. A neutral rescoring pass keeps the reply useful when strict scoring
// rules everything out.
func (s *Service) buildMenuResponse(content string, p profile.Profile, in intent.Intent) string {
	items := s.catalog.Items()

	picks := rankMenuItems(items, content, p, in, false)
	if len(picks) == 0 {
		picks = rankMenuItems(items, content, p, in, true)
		if len(picks) == 0 {
			return "I'm ready with personalized suggestions as soon as you share what you're craving—breakfast, burgers, chicken, desserts, anything! " +
				"Try something like “Recommend a spicy chicken sandwich” or “Need kids meals under $5.”"
		}
	}

	return s.formatMenuRecommendations(picks, p, in)
}

func (s *Service) formatMenuRecommendations(items []catalog.MenuItem, p profile.Profile, in intent.Intent) string {
	var lines []string
	switch {
	case in == intent.Dessert:
		lines = append(lines, "Treat yourself! Here are desserts fans rave about:")
	case in == intent.Coffee:
		lines = append(lines, "Here's a quick McCafé lineup to match your vibe:")
	case p.PartySize == profile.PartyFamily:
		lines = append(lines, "For a family-friendly spread, these are crowd favorites:")
	case p.Budget == profile.BudgetValue:
		lines = append(lines, "Sticking to the value side? These pack flavor without stretching the budget:")
	default:
		lines = append(lines, "Here's what I'd recommend based on what you shared:")
	}

	for _, item := range items {
		var extras []string
		if len(item.Sides) > 0 {
			extras = append(extras, "Try with "+strings.Join(item.Sides, " / "))
		}
		if len(item.DrinkOptions) > 0 {
			extras = append(extras, "Pair with "+strings.Join(item.DrinkOptions, ", "))
		}

		line := fmt.Sprintf("- **%s** ($%.2f • %d cal): %s", item.Name, item.Price, item.Calories, item.Description)
		if len(extras) > 0 {
			line += " · " + strings.Join(extras, " · ")
		}
		lines = append(lines, line)
	}

	if combos := s.catalog.Combos(); len(combos) > 0 {
		combo := combos[s.pick(len(combos))]
		lines = append(lines, "", fmt.Sprintf("Bonus combo idea — **%s**: %s. %s",
			combo.Title, strings.Join(combo.Items, ", "), combo.Description))
	}

	lines = append(lines, "", "Want nutrition info, swap an ingredient, or explore current deals?")
	return strings.Join(lines, "\n")
}

// buildNutritionResponse looks items up by literal name mention, then falls
// back to tag affinity for the intent.
func (s *Service) buildNutritionResponse(content string, p profile.Profile, in intent.Intent) string {
	lowered := strings.ToLower(content)
	all := s.catalog.Items()

	var matched []catalog.MenuItem
	for _, item := range all {
		if strings.Contains(lowered, strings.ToLower(item.Name)) {
			matched = append(matched, item)
		}
	}

	items := matched
	if len(items) == 0 {
		for _, item := range all {
			if nutritionFallbackMatch(item, lowered, in) {
				items = append(items, item)
			}
		}
	}
	if len(items) > 3 {
		items = items[:3]
	}

	if len(items) == 0 {
		return "I can pull nutrition and allergen stats for any McDonald's menu item in seconds. " +
			"Try asking something like “Calories in a Big Mac” or “Allergens for Chicken McNuggets.”"
	}

	header := "Nutrition break-down coming up:"
	if in == intent.Allergens {
		header = "Here's the allergen rundown:"
	}
	lines := []string{header}

	for _, item := range items {
		allergenLine := "Allergens: none noted."
		if len(item.Allergens) > 0 {
			allergenLine = "Allergens: " + strings.Join(item.Allergens, ", ")
		}
		lines = append(lines, fmt.Sprintf("- **%s** — Calories: %d · Protein: %dg · %s",
			item.Name, item.Calories, item.Protein, allergenLine))
	}

	if len(p.Dietary) > 0 {
		lines = append(lines, "", "I kept your dietary preferences in mind. Let me know if you need more swaps or alternatives.")
	} else {
		lines = append(lines, "", "Need ideas that match a specific goal like low-calorie or high-protein? Just say the word.")
	}

	return strings.Join(lines, "\n")
}

func nutritionFallbackMatch(item catalog.MenuItem, lowered string, in intent.Intent) bool {
	for _, tag := range item.Tags {
		if in == intent.Nutrition && tag == "high-protein" {
			return true
		}
		if in == intent.Allergens {
			for _, key := range intent.AllergenKeywords {
				if item.HasAllergen(key) {
					return true
				}
			}
		}
		if strings.Contains(lowered, tag) {
			return true
		}
	}
	return false
}

// buildOfferResponse ranks promotions against the profile; with no signal it
// still shows the first three rather than an empty list.
func (s *Service) buildOfferResponse(p profile.Profile, lowered string) string {
	offers := s.catalog.Offers()

	type scoredOffer struct {
		offer catalog.Offer
		score float64
	}
	scored := make([]scoredOffer, 0, len(offers))
	for _, offer := range offers {
		if sc := scoreOffer(offer, lowered, p); sc > 0 {
			scored = append(scored, scoredOffer{offer: offer, score: sc})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	relevant := make([]catalog.Offer, 0, 3)
	for _, entry := range scored {
		relevant = append(relevant, entry.offer)
		if len(relevant) == 3 {
			break
		}
	}
	if len(relevant) == 0 {
		relevant = offers
		if len(relevant) > 3 {
			relevant = relevant[:3]
		}
	}

	lines := []string{"Here are the current offers worth tapping into:"}
	for _, offer := range relevant {
		code := ""
		if offer.Code != "" {
			code = fmt.Sprintf("Use code %s. ", offer.Code)
		}
		lines = append(lines, fmt.Sprintf("- **%s** — %s. %s%s", offer.Title, offer.Description, code, offer.Validity))
		if len(offer.Conditions) > 0 {
			lines = append(lines, "  Conditions: "+strings.Join(offer.Conditions, "; "))
		}
	}

	lines = append(lines, "", "Tip: The McDonald's app rotates weekly deals. Toggle on notifications to capture the freshest limited-time offers.")
	return strings.Join(lines, "\n")
}

// buildLocationResponse resolves a store from the profile or the query and
// renders hours and services; with no match it prompts for a city instead.
func (s *Service) buildLocationResponse(p profile.Profile, in intent.Intent, lowered string) string {
	stores := s.catalog.Stores()

	found := p.Location
	if found == nil {
		found = matchStoreByQuery(lowered, stores)
	}

	if found == nil {
		cities := make([]string, 0, len(stores))
		for _, store := range stores {
			city, _, _ := strings.Cut(store.City, "-")
			cities = append(cities, strings.TrimSpace(city))
		}
		example1, example2 := "your city", "a nearby"
		if len(cities) > 0 {
			example1 = cities[0]
		}
		if len(cities) > 1 {
			example2 = cities[1]
		}
		return "I can pull hours, services, and delivery partners instantly—just drop a city or your cross streets. " +
			fmt.Sprintf("Try “What are the hours in %s?” or “Does the %s location offer McDelivery?”", example1, example2)
	}

	lines := []string{fmt.Sprintf("Here's what the **%s** crew is running:", found.City)}
	if in == intent.Hours || in == intent.Delivery {
		lines = append(lines, "Hours:")
		for _, line := range formatHours(*found) {
			lines = append(lines, "- "+line)
		}
	}

	if in == intent.Delivery {
		lines = append(lines, "", "Delivery & services:")
		for _, service := range found.Services {
			lines = append(lines, "- "+service)
		}
		lines = append(lines, "", "McDelivery works best through the McDonald's app, Uber Eats, and DoorDash. Fees vary by partner.")
	} else {
		lines = append(lines, "", "Services available:")
		for _, service := range found.Services {
			lines = append(lines, "- "+service)
		}
	}

	lines = append(lines, "",
		"Address: "+found.Address,
		"Phone: "+found.Phone,
		"Need a different spot? Just mention another neighborhood or city.")

	return strings.Join(lines, "\n")
}
