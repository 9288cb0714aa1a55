package memory

import (
	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/domain/repositories"
)

// StoreRepository provides in-memory store storage in registration order.
type StoreRepository struct {
	stores []*entities.Store
}

// NewStoreRepository creates a new in-memory store repository.
func NewStoreRepository() *StoreRepository {
	return &StoreRepository{
		stores: []*entities.Store{},
	}
}

// Verify interface compliance
var _ repositories.StoreRepository = (*StoreRepository)(nil)

// Add appends a store. No uniqueness check: stores sharing a name are
// tracked independently.
func (r *StoreRepository) Add(store *entities.Store) error {
	r.stores = append(r.stores, store)
	return nil
}

// All returns every registered store in registration order.
func (r *StoreRepository) All() ([]*entities.Store, error) {
	stores := make([]*entities.Store, len(r.stores))
	copy(stores, r.stores)
	return stores, nil
}

// Len returns the number of registered stores.
func (r *StoreRepository) Len() int {
	return len(r.stores)
}
