package agent

import (
	"sort"
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/analysis/intent"
	"github.com/quickserve/crew-assistant/backend/internal/analysis/profile"
	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
)

// scoredItem pairs a candidate with its heuristic score.
type scoredItem struct {
	item  catalog.MenuItem
	score float64
}

// rankMenuItems scores every item, keeps those above zero, and returns the
// top three. Ties preserve catalog order.
func rankMenuItems(items []catalog.MenuItem, content string, p profile.Profile, in intent.Intent, neutral bool) []catalog.MenuItem {
	scored := make([]scoredItem, 0, len(items))
	for _, item := range items {
		entry := scoredItem{item: item, score: scoreMenuItem(item, content, p, in, neutral)}
		if neutral || entry.score > 0 {
			scored = append(scored, entry)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > 3 {
		scored = scored[:3]
	}
	picks := make([]catalog.MenuItem, 0, len(scored))
	for _, entry := range scored {
		picks = append(picks, entry.item)
	}
	return picks
}

// scoreMenuItem combines profile signals and intent into a single additive
// score. The neutral flag lowers the base for the fallback pass that runs
// when strict scoring disqualifies everything.
func scoreMenuItem(item catalog.MenuItem, content string, p profile.Profile, in intent.Intent, neutral bool) float64 {
	score := 0.5
	if neutral {
		score = 0.2
	}
	loweredItem := strings.ToLower(item.Name)
	loweredContent := strings.ToLower(content)
	loweredDesc := strings.ToLower(item.Description)

	// Vegetarian is a hard veto; dairy-free only pushes the item to the
	// bottom. The asymmetry is intentional.
	if p.Dietary[profile.Vegetarian] && !item.HasTag("vegetarian") {
		return 0
	}
	if p.Dietary[profile.LowCalorie] && item.Calories > 450 {
		score -= 0.4
	}
	if p.Dietary[profile.HighProtein] && item.Protein >= 20 {
		score += 0.4
	}
	if p.Dietary[profile.DairyFree] && item.HasAllergen("dairy") {
		return 0.1
	}

	for dislike := range p.Dislikes {
		if strings.Contains(loweredDesc, dislike) {
			score -= 0.5
		}
	}
	for like := range p.Likes {
		if strings.Contains(loweredItem, like) || strings.Contains(loweredDesc, like) {
			score += 0.3
		}
	}
	for craving := range p.Cravings {
		if strings.Contains(loweredItem, craving) || strings.Contains(loweredDesc, craving) {
			score += 0.35
		}
	}

	if p.MealPeriod != "" && item.HasTag(p.MealPeriod) {
		score += 0.3
	}

	if p.PartySize == profile.PartyFamily && item.HasTag("kids") {
		score += 0.4
	}
	if in == intent.Kids && item.HasTag("kids") {
		score += 0.6
	}
	if in == intent.Dessert && item.HasTag("dessert") {
		score += 0.6
	}
	if in == intent.Coffee && item.HasTag("coffee") {
		score += 0.6
	}

	// Literal keyword mentions only count when the profile already agrees.
	if strings.Contains(loweredContent, "spicy") && p.SpiceLevel == profile.SpiceSpicy {
		score += 0.3
	}
	if strings.Contains(loweredContent, "mild") && p.SpiceLevel == profile.SpiceMild {
		score += 0.3
	}
	if strings.Contains(loweredContent, "protein") && p.Dietary[profile.HighProtein] {
		score += 0.2
	}
	if strings.Contains(loweredContent, "calorie") && p.Dietary[profile.LowCalorie] {
		score += 0.2
	}
	if strings.Contains(loweredContent, "value") && p.Budget == profile.BudgetValue {
		score += 0.2
	}

	if strings.Contains(loweredContent, loweredItem) {
		score += 0.5
	}

	if p.Budget == profile.BudgetValue && item.HasTag("value") {
		score += 0.3
	}

	return score
}

// scoreOffer has no vetoes; anything above the base means some signal aligned.
func scoreOffer(offer catalog.Offer, lowered string, p profile.Profile) float64 {
	score := 0.3
	if p.MealPeriod == profile.PeriodBreakfast && offer.HasTag("breakfast") {
		score += 0.4
	}
	if p.PartySize == profile.PartyFamily && offer.HasTag("family") {
		score += 0.4
	}
	if p.Budget == profile.BudgetValue && offer.HasTag("value") {
		score += 0.4
	}
	if p.Dietary[profile.Vegetarian] && offer.HasTag("veggie") {
		score += 0.2
	}
	if p.Dietary[profile.HighProtein] && offer.HasTag("high-protein") {
		score += 0.2
	}
	if strings.Contains(lowered, "delivery") && offer.HasTag("delivery") {
		score += 0.4
	}
	if strings.Contains(lowered, "coffee") && offer.HasTag("coffee") {
		score += 0.4
	}
	if strings.Contains(lowered, "app") && offer.HasTag("app") {
		score += 0.3
	}
	return score
}

// matchStoreByQuery resolves a store from the raw lowered query by comparing
// its whitespace-split words against each store's city words. First match wins.
func matchStoreByQuery(lowered string, stores []catalog.StoreLocation) *catalog.StoreLocation {
	queryWords := strings.Fields(lowered)
	for _, store := range stores {
		parts := strings.FieldsFunc(strings.ToLower(store.City), func(r rune) bool {
			return r == ' ' || r == ','
		})
		for _, part := range parts {
			for _, word := range queryWords {
				if word == part {
					found := store
					return &found
				}
			}
		}
	}
	return nil
}
