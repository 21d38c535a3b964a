package catalog

// Offer is a promotion surfaced to guests.
type Offer struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code,omitempty"`
	Validity    string   `json:"validity"`
	Conditions  []string `json:"conditions"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the offer carries the given tag.
func (o Offer) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SeedOffers provides the default promotion list.
func SeedOffers() []Offer {
	return []Offer{
		{
			Title:       "Mobile App Exclusive: Buy One Big Mac, Get One for $1",
			Description: "Order through the McDonald's app to unlock the BOGO $1 Big Mac deal.",
			Code:        "APPBIGMAC1",
			Validity:    "Valid through May 31",
			Conditions: []string{
				"Requires mobile order and pay",
				"Available once per day",
				"Not combinable with other Big Mac offers",
			},
			Tags: []string{"app", "burger", "limited"},
		},
		{
			Title:       "2 for $3 Breakfast Mix & Match",
			Description: "Choose any two: Sausage McMuffin, Sausage Biscuit, Sausage Burrito.",
			Validity:    "Available daily until 10:30 AM",
			Conditions: []string{
				"No substitutions",
				"Participation may vary",
				"Kiosk or counter orders qualify",
			},
			Tags: []string{"breakfast", "value"},
		},
		{
			Title:       "$0 Delivery Fee Weeknights",
			Description: "Skip the delivery fee on McDelivery orders placed Mon-Thu after 5 PM.",
			Validity:    "Valid with DoorDash and Uber Eats partners",
			Conditions: []string{
				"Minimum order $15 before fees",
				"Third-party service fees still apply",
				"Offer subject to courier availability",
			},
			Tags: []string{"delivery", "evening"},
		},
		{
			Title:       "Happy Meal Family Night",
			Description: "Free kid's size fries with every Happy Meal after 4 PM on Tuesdays.",
			Validity:    "Dine-in and drive-thru only",
			Conditions: []string{
				"Limit 4 per customer",
				"Not valid with mobile orders",
				"Participating locations only",
			},
			Tags: []string{"family", "kids", "dine-in"},
		},
		{
			Title:       "McCafé Rewards",
			Description: "Buy any 5 McCafé beverages, get the 6th one on us. Track progress in the app.",
			Validity:    "Ongoing loyalty program",
			Conditions: []string{
				"Digital punches only",
				"Free drink applied to equal or lesser value",
				"Excludes bottled beverages",
			},
			Tags: []string{"coffee", "loyalty"},
		},
	}
}
