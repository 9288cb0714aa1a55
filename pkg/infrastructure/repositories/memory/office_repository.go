package memory

import (
	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/domain/repositories"
)

// OfficeRepository provides in-memory office storage in registration order.
type OfficeRepository struct {
	offices []*entities.Office
}

// NewOfficeRepository creates a new in-memory office repository.
func NewOfficeRepository() *OfficeRepository {
	return &OfficeRepository{
		offices: []*entities.Office{},
	}
}

// Verify interface compliance
var _ repositories.OfficeRepository = (*OfficeRepository)(nil)

// Add appends an office. No uniqueness check: offices sharing a name are
// tracked independently.
func (r *OfficeRepository) Add(office *entities.Office) error {
	r.offices = append(r.offices, office)
	return nil
}

// All returns every registered office in registration order.
func (r *OfficeRepository) All() ([]*entities.Office, error) {
	offices := make([]*entities.Office, len(r.offices))
	copy(offices, r.offices)
	return offices, nil
}

// Len returns the number of registered offices.
func (r *OfficeRepository) Len() int {
	return len(r.offices)
}
