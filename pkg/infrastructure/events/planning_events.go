package events

import (
	"github.com/google/uuid"
)

const (
	OfficeRegisteredEvent = "office.registered"
	SupplyRequestedEvent  = "office.supply.requested"

	StoreRegisteredEvent = "store.registered"
	PriceSetEvent        = "store.price.set"

	ComparisonCompletedEvent   = "planning.comparison.completed"
	CheapestStoreSelectedEvent = "planning.cheapest.selected"
)

// PlanningStream is the stream carrying comparison and selection events.
const PlanningStream = "planning"

// OfficeStream returns the stream ID for a single office.
func OfficeStream(id uuid.UUID) string {
	return "office/" + id.String()
}

// StoreStream returns the stream ID for a single store.
func StoreStream(id uuid.UUID) string {
	return "store/" + id.String()
}

type OfficeRegistered struct {
	OfficeID uuid.UUID `json:"office_id"`
	Name     string    `json:"name"`
}

type SupplyRequested struct {
	OfficeID uuid.UUID `json:"office_id"`
	Item     string    `json:"item"`
	Quantity int64     `json:"quantity"`
}

type StoreRegistered struct {
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
}

type PriceSet struct {
	StoreID uuid.UUID `json:"store_id"`
	Item    string    `json:"item"`
	Price   string    `json:"price"`
}

type ComparisonCompleted struct {
	Items  int `json:"items"`
	Stores int `json:"stores"`
}

type CheapestStoreSelected struct {
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	Total   string    `json:"total"`
}
