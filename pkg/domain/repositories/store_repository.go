package repositories

import "github.com/dsandoval/shopplan/pkg/domain/entities"

// StoreRepository provides access to registered stores. Registration order
// is preserved and duplicates are tracked independently.
type StoreRepository interface {
	Add(store *entities.Store) error
	All() ([]*entities.Store, error)
	Len() int
}
