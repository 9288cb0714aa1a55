package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dsandoval/shopplan/pkg/domain/entities"
)

func TestStoreRepository_RegistrationOrder(t *testing.T) {
	repo := NewStoreRepository()

	names := []string{"Office Depot", "Staples", "Amazon"}
	for _, name := range names {
		if err := repo.Add(entities.NewStore(name)); err != nil {
			t.Fatalf("Failed to add store %s: %v", name, err)
		}
	}

	stores, err := repo.All()
	if err != nil {
		t.Fatalf("Failed to list stores: %v", err)
	}

	if len(stores) != len(names) {
		t.Fatalf("Expected %d stores, got %d", len(names), len(stores))
	}
	for i, name := range names {
		if stores[i].Name != name {
			t.Errorf("Store %d: expected %s, got %s", i, name, stores[i].Name)
		}
	}
}

func TestStoreRepository_DuplicateNamesTrackedIndependently(t *testing.T) {
	repo := NewStoreRepository()

	first := entities.NewStore("Depot")
	second := entities.NewStore("Depot")
	first.SetPrice("Pens", decimal.NewFromInt(1))
	second.SetPrice("Pens", decimal.NewFromInt(2))

	_ = repo.Add(first)
	_ = repo.Add(second)

	if repo.Len() != 2 {
		t.Fatalf("Expected 2 stores, got %d", repo.Len())
	}

	stores, _ := repo.All()
	price, _ := stores[0].PriceOf("Pens")
	if !price.Equal(decimal.NewFromInt(1)) {
		t.Errorf("First store: expected price 1, got %s", price)
	}
	price, _ = stores[1].PriceOf("Pens")
	if !price.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Second store: expected price 2, got %s", price)
	}
}
