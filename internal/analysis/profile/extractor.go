package profile

import (
	"regexp"
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/analysis/text"
	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
)

// Dietary preference values accumulated into the profile set.
const (
	Vegetarian  = "vegetarian"
	GlutenFree  = "gluten-free"
	LowCalorie  = "low-calorie"
	HighProtein = "high-protein"
	DairyFree   = "dairy-free"
)

// Spice levels, meal periods, party sizes, and budget tiers. The empty string
// means "not stated".
const (
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceSpicy  = "spicy"

	PeriodBreakfast = "breakfast"
	PeriodLunch     = "lunch"
	PeriodDinner    = "dinner"
	PeriodSnack     = "snack"

	PartySolo   = "solo"
	PartyPair   = "pair"
	PartyFamily = "family"
	PartyGroup  = "group"

	BudgetValue   = "value"
	BudgetPremium = "premium"
)

// Profile is the cumulative guest preference state inferred from a transcript.
// It is recomputed from scratch on every request and never persisted.
//
// Dietary, Dislikes, Likes, and Cravings only grow while scanning; SpiceLevel,
// MealPeriod, PartySize, Budget, and Location are plain assignments, so a later
// turn always overrides an earlier one. That recency-wins vs union-of-evidence
// split is part of the contract.
type Profile struct {
	Dietary  map[string]bool
	Dislikes map[string]bool
	Likes    map[string]bool
	Cravings map[string]bool

	SpiceLevel string
	MealPeriod string
	PartySize  string
	Budget     string
	Location   *catalog.StoreLocation
}

// Empty returns a profile with allocated, empty sets.
func Empty() Profile {
	return Profile{
		Dietary:  make(map[string]bool),
		Dislikes: make(map[string]bool),
		Likes:    make(map[string]bool),
		Cravings: make(map[string]bool),
	}
}

type pattern struct {
	re    *regexp.Regexp
	apply func(p *Profile, m []string)
}

// patterns run unconditionally against the raw turn content, in this fixed
// order. Where two rules assign the same field, the later rule in the list
// wins within a single turn.
var patterns = []pattern{
	{regexp.MustCompile(`(?i)\bno\s+([a-z]+)`), func(p *Profile, m []string) {
		p.Dislikes[strings.ToLower(m[1])] = true
	}},
	{regexp.MustCompile(`(?i)\ballergic\s+to\s+([a-z]+)`), func(p *Profile, m []string) {
		p.Dislikes[strings.ToLower(m[1])] = true
	}},
	{regexp.MustCompile(`(?i)\blove\s+([a-z\s]+)`), func(p *Profile, m []string) {
		p.Likes[strings.TrimSpace(m[1])] = true
	}},
	{regexp.MustCompile(`(?i)\b(craving|want)\s+(.*)`), func(p *Profile, m []string) {
		p.Cravings[strings.ToLower(strings.TrimSpace(m[2]))] = true
	}},
	{regexp.MustCompile(`(?i)\bspicy\b`), func(p *Profile, m []string) {
		p.SpiceLevel = SpiceSpicy
	}},
	{regexp.MustCompile(`(?i)\bmild\b`), func(p *Profile, m []string) {
		p.SpiceLevel = SpiceMild
	}},
	{regexp.MustCompile(`(?i)\bmedium spicy\b`), func(p *Profile, m []string) {
		p.SpiceLevel = SpiceMedium
	}},
	{regexp.MustCompile(`(?i)\b(breakfast|lunch|dinner|late night|snack)\b`), func(p *Profile, m []string) {
		switch value := strings.ToLower(m[0]); {
		case strings.Contains(value, "breakfast"):
			p.MealPeriod = PeriodBreakfast
		case strings.Contains(value, "lunch"):
			p.MealPeriod = PeriodLunch
		case strings.Contains(value, "dinner"), strings.Contains(value, "late night"):
			p.MealPeriod = PeriodDinner
		case strings.Contains(value, "snack"):
			p.MealPeriod = PeriodSnack
		}
	}},
	{regexp.MustCompile(`(?i)\b(cheap|affordable|value|budget)\b`), func(p *Profile, m []string) {
		p.Budget = BudgetValue
	}},
	{regexp.MustCompile(`(?i)\b(premium|treat|splurge)\b`), func(p *Profile, m []string) {
		p.Budget = BudgetPremium
	}},
	{regexp.MustCompile(`(?i)\b(kid|kids|family|children|toddler)\b`), func(p *Profile, m []string) {
		p.PartySize = PartyFamily
	}},
	{regexp.MustCompile(`(?i)\b(office|team|coworker|group)\b`), func(p *Profile, m []string) {
		p.PartySize = PartyGroup
	}},
	{regexp.MustCompile(`(?i)\bdate\b`), func(p *Profile, m []string) {
		p.PartySize = PartyPair
	}},
}

// storeQuery pairs a store with its precomputed match strings.
type storeQuery struct {
	store   catalog.StoreLocation
	cityKey string
	full    string
}

// Extract folds the transcript's user turns, oldest to newest, into a profile.
// It is a pure function of its inputs: the same transcript and store list
// always reproduce the same profile.
func Extract(turns []chat.Turn, stores []catalog.StoreLocation) Profile {
	queries := make([]storeQuery, 0, len(stores))
	for _, store := range stores {
		city, _, _ := strings.Cut(store.City, ",")
		queries = append(queries, storeQuery{
			store:   store,
			cityKey: text.Normalize(city),
			full:    text.Normalize(store.City + " " + store.Address),
		})
	}

	p := Empty()
	for _, turn := range turns {
		if turn.Role != chat.RoleUser {
			continue
		}
		p = applyTurn(p, turn.Content, queries)
	}
	return p
}

func applyTurn(p Profile, content string, queries []storeQuery) Profile {
	lowered := text.Normalize(content)

	if strings.Contains(lowered, "vegetarian") || strings.Contains(lowered, "veggie") {
		p.Dietary[Vegetarian] = true
	}
	if strings.Contains(lowered, "gluten") {
		p.Dietary[GlutenFree] = true
	}
	if strings.Contains(lowered, "lactose") || strings.Contains(lowered, "dairy-free") || strings.Contains(lowered, "no dairy") {
		p.Dietary[DairyFree] = true
	}
	if strings.Contains(lowered, "low calorie") || strings.Contains(lowered, "lighter") {
		p.Dietary[LowCalorie] = true
	}
	if strings.Contains(lowered, "high protein") || strings.Contains(lowered, "protein") {
		p.Dietary[HighProtein] = true
	}

	// Mentions of kids default the party size, but never override an
	// explicit earlier choice.
	if p.PartySize == "" && (strings.Contains(lowered, "kids") || strings.Contains(lowered, "happy meal")) {
		p.PartySize = PartyFamily
	}

	for _, pat := range patterns {
		for _, m := range pat.re.FindAllStringSubmatch(content, -1) {
			pat.apply(&p, m)
		}
	}

	for _, q := range queries {
		if strings.Contains(lowered, q.cityKey) || strings.Contains(lowered, q.full) {
			store := q.store
			p.Location = &store
		}
	}

	return p
}
