package intent

import (
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/analysis/text"
)

// Intent is the single classified purpose of a user utterance.
type Intent string

const (
	Greeting  Intent = "greeting"
	Goodbye   Intent = "goodbye"
	Menu      Intent = "menu"
	Nutrition Intent = "nutrition"
	Allergens Intent = "allergens"
	Offers    Intent = "offers"
	Hours     Intent = "hours"
	Delivery  Intent = "delivery"
	Kids      Intent = "kids"
	Dessert   Intent = "dessert"
	Coffee    Intent = "coffee"
	Feedback  Intent = "feedback"
	Unknown   Intent = "unknown"
)

// Match pairs the detected intent with a heuristic confidence.
type Match struct {
	Intent     Intent
	Confidence float64
}

// AllergenKeywords are matched as plain substrings over the whole normalized
// utterance, not per token. Shared with the nutrition fallback lookup.
var AllergenKeywords = []string{"allergy", "allergen", "gluten", "dairy", "soy", "nuts", "peanut"}

// rules are evaluated top to bottom; the first hit wins. The ordering is the
// priority policy among overlapping keyword sets.
var rules = []struct {
	intent     Intent
	confidence float64
	keywords   []string
}{
	{Greeting, 0.8, []string{"hello", "hi", "hey", "morning", "evening", "afternoon"}},
	{Goodbye, 0.7, []string{"bye", "goodbye", "thanks,bye", "thankyoubye", "see you"}},
	{Allergens, 0.75, nil}, // substring test over AllergenKeywords
	{Nutrition, 0.65, []string{"calorie", "protein", "nutrition", "carb", "sugar", "fat", "macro", "ingredient"}},
	{Offers, 0.75, []string{"deal", "offer", "promo", "special", "coupon", "discount"}},
	{Hours, 0.7, []string{"hour", "open", "close", "time", "24"}},
	{Delivery, 0.7, []string{"delivery", "deliver", "uber", "doordash", "grubhub", "courier"}},
	{Kids, 0.7, []string{"kid", "happy meal", "child", "toddler"}},
	{Dessert, 0.7, []string{"dessert", "sweet", "mcflurry", "ice cream", "cone"}},
	{Coffee, 0.7, []string{"coffee", "latte", "espresso", "macchiato", "iced coffee"}},
	{Feedback, 0.6, []string{"complain", "bad", "upset", "disappoint", "feedback"}},
	{Menu, 0.65, []string{
		"recommend", "what should", "menu", "order", "suggest", "hungry",
		"combo", "meal", "burger", "nugget", "breakfast", "lunch", "dinner", "snack",
	}},
}

// Detect classifies an utterance against the ordered rule list.
func Detect(content string) Match {
	normalized := text.Normalize(content)
	tokens := strings.Split(normalized, " ")

	for _, rule := range rules {
		if rule.intent == Allergens {
			if containsAny(normalized, AllergenKeywords) {
				return Match{Intent: rule.intent, Confidence: rule.confidence}
			}
			continue
		}
		if keywordHit(tokens, rule.keywords) {
			return Match{Intent: rule.intent, Confidence: rule.confidence}
		}
	}

	return Match{Intent: Unknown, Confidence: 0.25}
}

// keywordHit passes when any keyword is a prefix of, or a substring of, any
// token. The loose dual test is deliberate: the prefix leg catches stemmed
// forms ("calorie" vs "calories"), the substring leg catches compound tokens.
func keywordHit(tokens, keywords []string) bool {
	for _, word := range keywords {
		for _, token := range tokens {
			if strings.HasPrefix(token, word) || strings.Contains(token, word) {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, word := range keywords {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}
