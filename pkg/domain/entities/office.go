package entities

import "github.com/google/uuid"

// Office represents a requester with its supply needs. Office names are
// display labels and are not required to be unique; the ID is the identity.
type Office struct {
	ID   uuid.UUID
	Name string

	supplies *Demand
}

// NewOffice creates an office with an empty supply list.
func NewOffice(name string) *Office {
	return &Office{
		ID:       uuid.New(),
		Name:     name,
		supplies: NewDemand(),
	}
}

// AddItem increments the requested quantity for item by qty, creating the
// entry on first sight. The core performs no sign validation; the input
// boundary is responsible for rejecting non-positive quantities.
func (o *Office) AddItem(item ItemName, qty Quantity) {
	o.supplies.Add(item, qty)
}

// Supplies returns a snapshot of the office's current demand. Mutating the
// snapshot does not affect the office.
func (o *Office) Supplies() *Demand {
	return o.supplies.Snapshot()
}
