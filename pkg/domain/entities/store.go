package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// priceEntry is a single line in a store's price book.
type priceEntry struct {
	item  ItemName
	price Price
}

// Store represents a supplier with a per-item price book. Absence of an
// item means the store does not sell it. Store names are display labels;
// the ID is the identity.
type Store struct {
	ID   uuid.UUID
	Name string

	// Sorted by item name for deterministic listings.
	prices *btree.BTreeG[priceEntry]
}

// NewStore creates a store with an empty price book.
func NewStore(name string) *Store {
	prices := btree.NewBTreeG(func(a, b priceEntry) bool {
		return a.item < b.item
	})
	return &Store{
		ID:     uuid.New(),
		Name:   name,
		prices: prices,
	}
}

// SetPrice sets the unit price for item. Last write wins; no history.
func (s *Store) SetPrice(item ItemName, price Price) {
	s.prices.Set(priceEntry{item: item, price: price})
}

// PriceOf returns the unit price for item and whether the store sells it.
// It never fails; an unsold item yields (zero, false).
func (s *Store) PriceOf(item ItemName) (Price, bool) {
	entry, ok := s.prices.Get(priceEntry{item: item})
	if !ok {
		return decimal.Zero, false
	}
	return entry.price, true
}

// Items returns the priced item names in ascending order.
func (s *Store) Items() []ItemName {
	items := make([]ItemName, 0, s.prices.Len())
	s.prices.Scan(func(entry priceEntry) bool {
		items = append(items, entry.item)
		return true
	})
	return items
}
