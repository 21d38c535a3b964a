package catalog

// MenuItem describes one orderable product.
type MenuItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Calories     int      `json:"calories"`
	Protein      int      `json:"protein"`
	Tags         []string `json:"tags"`
	Allergens    []string `json:"allergens"`
	Sides        []string `json:"sides,omitempty"`
	DrinkOptions []string `json:"drinkOptions,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (i MenuItem) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllergen reports whether the item lists the given allergen.
func (i MenuItem) HasAllergen(name string) bool {
	for _, a := range i.Allergens {
		if a == name {
			return true
		}
	}
	return false
}

// MenuCategory groups items the way the menu board presents them.
type MenuCategory struct {
	Name     string     `json:"name"`
	Headline string     `json:"headline"`
	Items    []MenuItem `json:"items"`
}

// Combo is a pre-authored bundle offered as a bonus recommendation.
type Combo struct {
	Title       string   `json:"title"`
	Items       []string `json:"items"`
	Description string   `json:"description"`
}

// SeedMenu provides the default menu board.
func SeedMenu() []MenuCategory {
	return []MenuCategory{
		{
			Name:     "Signature Burgers",
			Headline: "The hallmark classics people crave",
			Items: []MenuItem{
				{
					Name:         "Big Mac",
					Description:  "Two 100% beef patties with Big Mac Sauce, shredded lettuce, and pickles on a sesame seed bun.",
					Price:        5.99,
					Calories:     550,
					Protein:      25,
					Tags:         []string{"lunch", "dinner", "beef", "combo"},
					Allergens:    []string{"gluten", "soy", "egg", "sesame"},
					Sides:        []string{"World Famous Fries", "Side Salad"},
					DrinkOptions: []string{"Coca-Cola", "Sprite", "Iced Tea", "Bottled Water"},
				},
				{
					Name:         "Quarter Pounder with Cheese",
					Description:  "Quarter pound of 100% fresh beef, two slices of cheese, pickles, onions, ketchup, and mustard.",
					Price:        5.79,
					Calories:     520,
					Protein:      30,
					Tags:         []string{"lunch", "dinner", "beef", "combo", "high-protein"},
					Allergens:    []string{"gluten", "soy", "dairy", "sesame"},
					Sides:        []string{"Fries", "Apple Slices"},
					DrinkOptions: []string{"Coca-Cola", "Diet Coke", "Dr Pepper", "Minute Maid"},
				},
				{
					Name:        "McDouble",
					Description: "Two beef patties, pickles, onions, cheese, ketchup, and mustard on a toasted bun.",
					Price:       3.39,
					Calories:    400,
					Protein:     22,
					Tags:        []string{"lunch", "dinner", "beef", "value"},
					Allergens:   []string{"gluten", "soy", "dairy", "sesame"},
				},
			},
		},
		{
			Name:     "Chicken Favorites",
			Headline: "Crispy or grilled protein-packed choices",
			Items: []MenuItem{
				{
					Name:         "McCrispy",
					Description:  "Crispy chicken filet with toasted potato roll, crinkle-cut pickles, and butter.",
					Price:        5.49,
					Calories:     470,
					Protein:      27,
					Tags:         []string{"lunch", "dinner", "chicken", "combo"},
					Allergens:    []string{"gluten", "soy", "dairy"},
					Sides:        []string{"Fries", "Side Salad", "Hash Browns (all-day)"},
					DrinkOptions: []string{"Sweet Tea", "Frozen Fanta", "Hi-C Orange"},
				},
				{
					Name:        "Spicy McCrispy",
					Description: "Crispy chicken filet layered with spicy pepper sauce and pickles.",
					Price:       5.69,
					Calories:    530,
					Protein:     27,
					Tags:        []string{"lunch", "dinner", "chicken", "combo", "limited"},
					Allergens:   []string{"gluten", "soy", "dairy"},
				},
				{
					Name:         "Chicken McNuggets 10pc",
					Description:  "Ten tender, juicy chicken bites paired with your favorite dipping sauces.",
					Price:        5.29,
					Calories:     440,
					Protein:      24,
					Tags:         []string{"lunch", "dinner", "chicken", "combo"},
					Allergens:    []string{"gluten", "soy"},
					Sides:        []string{"Fries", "Apple Slices"},
					DrinkOptions: []string{"Any Soft Drink", "Milk", "Honest Kids Apple Juice"},
				},
			},
		},
		{
			Name:     "Breakfast All-Stars",
			Headline: "Fast fuel to start the day right",
			Items: []MenuItem{
				{
					Name:         "Egg McMuffin",
					Description:  "Fresh cracked Grade A egg, lean Canadian bacon, and melty cheese on a toasted English muffin.",
					Price:        3.99,
					Calories:     310,
					Protein:      17,
					Tags:         []string{"breakfast", "high-protein"},
					Allergens:    []string{"gluten", "dairy", "egg"},
					Sides:        []string{"Hash Browns", "Fruit & Maple Oatmeal"},
					DrinkOptions: []string{"Premium Roast Coffee", "Latte", "Orange Juice"},
				},
				{
					Name:        "Sausage Burrito",
					Description: "Scrambled eggs, sausage, vegetables, and cheese wrapped in a soft tortilla.",
					Price:       2.49,
					Calories:    300,
					Protein:     13,
					Tags:        []string{"breakfast", "value"},
					Allergens:   []string{"gluten", "dairy", "egg"},
				},
				{
					Name:        "Hotcakes",
					Description: "Three golden-brown hotcakes served with butter and maple-flavored syrup.",
					Price:       3.49,
					Calories:    580,
					Protein:     9,
					Tags:        []string{"breakfast", "dessert"},
					Allergens:   []string{"gluten", "dairy", "egg"},
				},
			},
		},
		{
			Name:     "Balanced Choices",
			Headline: "Options for lighter or specialized diets",
			Items: []MenuItem{
				{
					Name:        "Southwest Grilled Chicken Salad",
					Description: "Mixed greens, grilled chicken, black beans, corn, tomatoes, cheddar, and tortilla strips with cilantro lime dressing.",
					Price:       5.89,
					Calories:    350,
					Protein:     37,
					Tags:        []string{"lunch", "dinner", "chicken", "vegetarian", "low-calorie", "high-protein"},
					Allergens:   []string{"dairy"},
				},
				{
					Name:        "Apple Slices",
					Description: "Fresh-cut apple slices, perfect for snacking or sides.",
					Price:       1.29,
					Calories:    15,
					Protein:     0,
					Tags:        []string{"snack", "vegetarian", "kids", "low-calorie"},
					Allergens:   []string{},
				},
				{
					Name:        "Fruit & Maple Oatmeal",
					Description: "Whole-grain oats, diced apples, cranberry raisin blend, and cream for natural sweetness.",
					Price:       2.99,
					Calories:    320,
					Protein:     6,
					Tags:        []string{"breakfast", "vegetarian"},
					Allergens:   []string{"gluten", "dairy"},
				},
			},
		},
		{
			Name:     "Treats & Sips",
			Headline: "Desserts and beverages to round out any meal",
			Items: []MenuItem{
				{
					Name:        "McFlurry with Oreo",
					Description: "Soft serve vanilla blended with crushed Oreo cookies for a creamy treat.",
					Price:       3.89,
					Calories:    510,
					Protein:     12,
					Tags:        []string{"dessert"},
					Allergens:   []string{"dairy", "gluten"},
				},
				{
					Name:        "Vanilla Cone",
					Description: "Classic soft-serve vanilla cone for a cool-down moment on the go.",
					Price:       1.49,
					Calories:    200,
					Protein:     5,
					Tags:        []string{"dessert", "value"},
					Allergens:   []string{"dairy"},
				},
				{
					Name:        "Iced Caramel Macchiato",
					Description: "Cold whole milk with rich caramel syrup, layered with espresso and topped with caramel drizzle.",
					Price:       3.69,
					Calories:    260,
					Protein:     9,
					Tags:        []string{"coffee"},
					Allergens:   []string{"dairy"},
				},
			},
		},
		{
			Name:     "Family & Kids",
			Headline: "Smiles guaranteed for little ones",
			Items: []MenuItem{
				{
					Name:         "4 Piece Chicken McNuggets Happy Meal",
					Description:  "Four Chicken McNuggets, kid's fries, apple slices, and a choice of drink with a Happy Meal toy.",
					Price:        4.19,
					Calories:     395,
					Protein:      14,
					Tags:         []string{"kids", "chicken", "combo"},
					Allergens:    []string{"gluten", "soy"},
					DrinkOptions: []string{"Milk", "Honest Kids Apple Juice", "Bottled Water"},
				},
				{
					Name:        "Hamburger Happy Meal",
					Description: "Classic hamburger with kids fries, apple slices, and a kids drink plus the latest Happy Meal toy.",
					Price:       3.99,
					Calories:    475,
					Protein:     14,
					Tags:        []string{"kids", "beef", "combo"},
					Allergens:   []string{"gluten", "soy", "sesame"},
				},
			},
		},
	}
}

// SeedCombos provides the default combo suggestions.
func SeedCombos() []Combo {
	return []Combo{
		{
			Title:       "Classic Comfort",
			Items:       []string{"Big Mac", "Medium Fries", "Coca-Cola"},
			Description: "Satisfying American classic built for a lunch break.",
		},
		{
			Title:       "Protein Power Lunch",
			Items:       []string{"Quarter Pounder with Cheese", "Side Salad", "Iced Tea"},
			Description: "Higher protein with greens on the side for balance.",
		},
		{
			Title:       "Spicy Share Box",
			Items:       []string{"Spicy McCrispy", "10pc Chicken McNuggets", "2 Sauces", "Large Fries"},
			Description: "Kick up the heat while keeping enough to share.",
		},
		{
			Title:       "Kids Night Out",
			Items:       []string{"4pc McNuggets Happy Meal", "Hamburger Happy Meal", "Vanilla Cone"},
			Description: "Easy crowd-pleaser for younger diners.",
		},
		{
			Title:       "Morning Boost",
			Items:       []string{"Egg McMuffin", "Hash Browns", "Large Latte"},
			Description: "Grab-and-go breakfast before the day ramps up.",
		},
	}
}
