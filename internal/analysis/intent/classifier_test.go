package intent

import "testing"

func TestDetectBasicIntents(t *testing.T) {
	cases := []struct {
		content string
		want    Intent
	}{
		{"Hello there", Greeting},
		{"ok bye now", Goodbye},
		{"does the Big Mac contain gluten?", Allergens},
		{"how much protein is in that", Nutrition},
		{"any deals today?", Offers},
		{"when do you open", Hours},
		{"can I get it on doordash", Delivery},
		{"a meal for my toddler", Kids},
		{"I want a McFlurry", Dessert},
		{"an iced latte please", Coffee},
		{"I want to complain about my order", Feedback},
		{"recommend me a burger", Menu},
		{"zzz qqq", Unknown},
	}

	for _, tc := range cases {
		if got := Detect(tc.content); got.Intent != tc.want {
			t.Errorf("Detect(%q) = %s, want %s", tc.content, got.Intent, tc.want)
		}
	}
}

// A message holding both a greeting token and a nutrition token must resolve
// to greeting: the rule list is evaluated top to bottom.
func TestDetectPriorityGreetingBeforeNutrition(t *testing.T) {
	got := Detect("hi, how many calories")
	if got.Intent != Greeting {
		t.Fatalf("expected greeting, got %s", got.Intent)
	}
}

// The prefix leg of the keyword test catches stemmed forms.
func TestDetectPrefixMatching(t *testing.T) {
	got := Detect("list your calories please")
	if got.Intent != Nutrition {
		t.Fatalf("expected nutrition for stemmed keyword, got %s", got.Intent)
	}
}

// Allergen keywords match as substrings over the whole normalized utterance.
func TestDetectAllergenSubstring(t *testing.T) {
	got := Detect("any peanut concerns with nuggets")
	if got.Intent != Allergens {
		t.Fatalf("expected allergens, got %s", got.Intent)
	}
}

func TestDetectUnknownConfidence(t *testing.T) {
	got := Detect("xyzzy")
	if got.Intent != Unknown {
		t.Fatalf("expected unknown, got %s", got.Intent)
	}
	if got.Confidence >= 0.5 {
		t.Fatalf("unknown should carry low confidence, got %f", got.Confidence)
	}
}

func TestDetectPunctuationIgnored(t *testing.T) {
	if got := Detect("HELLO!!!"); got.Intent != Greeting {
		t.Fatalf("expected greeting, got %s", got.Intent)
	}
}
