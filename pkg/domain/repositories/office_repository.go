package repositories

import "github.com/dsandoval/shopplan/pkg/domain/entities"

// OfficeRepository provides access to registered offices. Registration
// order is preserved and duplicates are tracked independently.
type OfficeRepository interface {
	Add(office *entities.Office) error
	All() ([]*entities.Office, error)
	Len() int
}
