package catalog

// Store exposes the read-only catalogs to services and HTTP handlers.
type Store interface {
	Categories() []MenuCategory
	Items() []MenuItem
	Combos() []Combo
	Offers() []Offer
	Stores() []StoreLocation
}

// MemoryStore implements Store with preloaded slices. The catalogs never
// change after construction, so it is safe to share across requests.
type MemoryStore struct {
	categories []MenuCategory
	items      []MenuItem
	combos     []Combo
	offers     []Offer
	stores     []StoreLocation
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied catalogs.
func NewMemoryStore(categories []MenuCategory, combos []Combo, offers []Offer, stores []StoreLocation) *MemoryStore {
	s := &MemoryStore{
		categories: append([]MenuCategory(nil), categories...),
		combos:     append([]Combo(nil), combos...),
		offers:     append([]Offer(nil), offers...),
		stores:     append([]StoreLocation(nil), stores...),
	}
	for _, category := range s.categories {
		s.items = append(s.items, category.Items...)
	}
	return s
}

// NewSeededStore returns a MemoryStore carrying the default catalogs.
func NewSeededStore() *MemoryStore {
	return NewMemoryStore(SeedMenu(), SeedCombos(), SeedOffers(), SeedStores())
}

// Categories returns the menu grouped by board section.
func (s *MemoryStore) Categories() []MenuCategory {
	return append([]MenuCategory(nil), s.categories...)
}

// Items returns every menu item flattened in catalog order.
func (s *MemoryStore) Items() []MenuItem {
	return append([]MenuItem(nil), s.items...)
}

// Combos returns the combo suggestion list.
func (s *MemoryStore) Combos() []Combo {
	return append([]Combo(nil), s.combos...)
}

// Offers returns the promotion list.
func (s *MemoryStore) Offers() []Offer {
	return append([]Offer(nil), s.offers...)
}

// Stores returns the restaurant directory.
func (s *MemoryStore) Stores() []StoreLocation {
	return append([]StoreLocation(nil), s.stores...)
}
