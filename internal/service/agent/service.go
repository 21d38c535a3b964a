package agent

import (
	"context"
	"math/rand"
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/analysis/intent"
	"github.com/quickserve/crew-assistant/backend/internal/analysis/profile"
	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
)

// Picker selects an index in [0, n). It is the single source of randomness in
// the pipeline (the bonus combo line); injecting it keeps every other output
// byte-for-byte reproducible.
type Picker func(n int) int

// Service runs the rule-based responder over a transcript. It holds no
// per-request state, so one instance serves concurrent requests.
type Service struct {
	catalog catalog.Store
	pick    Picker
}

// NewService wires the responder to its read-only catalogs. A nil picker
// falls back to the global math/rand source.
func NewService(store catalog.Store, pick Picker) *Service {
	if pick == nil {
		pick = rand.Intn
	}
	return &Service{catalog: store, pick: pick}
}

var fallbackSuggestions = []string{
	"Suggest a combo for lunch",
	"Ask for nutrition on a menu item",
	"Find deals near me",
	"Check location hours",
}

// Run produces one assistant turn for the supplied transcript: response text,
// the classified intent, and up to three follow-up suggestion chips.
func (s *Service) Run(_ context.Context, turns []chat.Turn) chat.AgentResponse {
	var latest *chat.Turn
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == chat.RoleUser {
			latest = &turns[i]
			break
		}
	}

	if latest == nil {
		return chat.AgentResponse{
			Role:   chat.RoleAssistant,
			Intent: string(intent.Greeting),
			Content: "Hi there! I'm your McDonald's crew assistant. I can recommend meals, check nutrition, " +
				"share current offers, or look up restaurant hours. What are you craving today?",
			Suggestions: append([]string(nil), fallbackSuggestions[:3]...),
		}
	}

	p := profile.Extract(turns, s.catalog.Stores())
	match := intent.Detect(latest.Content)
	lowered := strings.ToLower(latest.Content)

	resp := chat.AgentResponse{Role: chat.RoleAssistant, Intent: string(match.Intent)}

	switch match.Intent {
	case intent.Greeting:
		resp.Content = buildGreeting(p)
		resp.Suggestions = s.buildSuggestions(p)
	case intent.Goodbye:
		resp.Content = "Thanks for chatting! If you crave McDonald's again, I'm here to help with recommendations or the latest deals."
		resp.Suggestions = []string{}
	case intent.Menu, intent.Kids, intent.Dessert, intent.Coffee:
		resp.Content = s.buildMenuResponse(latest.Content, p, match.Intent)
		resp.Suggestions = s.buildSuggestions(p)
	case intent.Nutrition, intent.Allergens:
		resp.Content = s.buildNutritionResponse(latest.Content, p, match.Intent)
		resp.Suggestions = []string{
			"Suggest a lower calorie option",
			"Compare protein between menu items",
			"See dessert nutrition facts",
		}
	case intent.Offers:
		resp.Content = s.buildOfferResponse(p, lowered)
		resp.Suggestions = []string{"Show breakfast deals", "Plan a value meal", "Check loyalty rewards"}
	case intent.Hours, intent.Delivery:
		resp.Content = s.buildLocationResponse(p, match.Intent, lowered)
		resp.Suggestions = []string{"See another city", "Ask about drive-thru", "Get delivery-friendly meals"}
	case intent.Feedback:
		resp.Content = "I appreciate the feedback. I'll pass it along to the crew so we can keep improving your experience. Can I help with anything else on the menu?"
		resp.Suggestions = s.buildSuggestions(p)
	default:
		resp.Content = contextualFollowup(turns, p)
		resp.Suggestions = s.buildSuggestions(p)
	}

	return resp
}

// contextualFollowup is the soft landing for utterances no rule recognized.
func contextualFollowup(turns []chat.Turn, p profile.Profile) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != chat.RoleAssistant {
			continue
		}
		if strings.Contains(strings.ToLower(turns[i].Content), "anything else") {
			return "What else can I line up for you—combos, dessert add-ons, or maybe the latest deals in the app?"
		}
		break
	}

	if len(p.Dietary) > 0 {
		return "I caught your dietary preferences. Want me to find compatible items or share allergen-safe picks?"
	}

	return "I'm ready to help with menu picks, nutrition facts, or nearby restaurant info—just say the word!"
}

func buildGreeting(p profile.Profile) string {
	parts := []string{"Hey there! Welcome to McDonald's digital crew counter."}
	switch p.MealPeriod {
	case profile.PeriodBreakfast:
		parts = append(parts, "Hotcakes, Egg McMuffins, and McCafé drinks are ready to roll this morning.")
	case profile.PeriodDinner:
		parts = append(parts, "Evening appetite? I can line up combos, late-night bites, or dessert treats.")
	}

	if p.PartySize == profile.PartyFamily {
		parts = append(parts, "Need Happy Meals or shareable nuggets? I can build a family order fast.")
	} else if p.Budget == profile.BudgetValue {
		parts = append(parts, "Looking to save? Ask about today's app-friendly deals and value picks.")
	}

	parts = append(parts, "How can I make your McDonald's run easier right now?")
	return strings.Join(parts, " ")
}
