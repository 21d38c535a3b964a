package catalog

import "testing"

func TestSeededStoreFlattensItemsInCatalogOrder(t *testing.T) {
	store := NewSeededStore()

	items := store.Items()
	var total int
	var ordered []string
	for _, category := range store.Categories() {
		total += len(category.Items)
		for _, item := range category.Items {
			ordered = append(ordered, item.Name)
		}
	}

	if len(items) != total {
		t.Fatalf("flattened %d items, categories hold %d", len(items), total)
	}
	for i, item := range items {
		if item.Name != ordered[i] {
			t.Fatalf("item %d = %s, want %s", i, item.Name, ordered[i])
		}
	}
	if items[0].Name != "Big Mac" {
		t.Errorf("first catalog item = %s, want Big Mac", items[0].Name)
	}
}

func TestMenuItemTagAndAllergenLookup(t *testing.T) {
	item := MenuItem{
		Tags:      []string{"lunch", "beef"},
		Allergens: []string{"gluten", "dairy"},
	}

	if !item.HasTag("beef") || item.HasTag("dessert") {
		t.Error("HasTag mismatch")
	}
	if !item.HasAllergen("dairy") || item.HasAllergen("soy") {
		t.Error("HasAllergen mismatch")
	}
}

func TestStoreReturnsDefensiveCopies(t *testing.T) {
	store := NewSeededStore()

	offers := store.Offers()
	offers[0].Title = "mutated"

	if store.Offers()[0].Title == "mutated" {
		t.Fatal("Offers leak internal state")
	}
}
