package dto

import (
	"github.com/google/uuid"

	"github.com/dsandoval/shopplan/pkg/domain/entities"
)

// Outcome classifies the result of a cheapest-store search. The empty cases
// are distinguished explicitly instead of overloading a numeric sentinel.
type Outcome int

const (
	// OutcomeFound means a fully-feasible store was selected.
	OutcomeFound Outcome = iota
	// OutcomeNoDemand means the consolidated demand was empty.
	OutcomeNoDemand
	// OutcomeNoStores means demand exists but no stores are registered.
	OutcomeNoStores
	// OutcomeNoFeasibleStore means every store is missing at least one item.
	OutcomeNoFeasibleStore
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "Found"
	case OutcomeNoDemand:
		return "NoDemand"
	case OutcomeNoStores:
		return "NoStores"
	case OutcomeNoFeasibleStore:
		return "NoFeasibleStore"
	default:
		return "Unknown"
	}
}

// CheapestResult is the outcome of a cheapest-store search. Store is nil and
// Total is the zero decimal unless Outcome is OutcomeFound. Demand is the
// consolidated demand the search ran against (empty for OutcomeNoDemand).
type CheapestResult struct {
	Outcome Outcome
	Store   *entities.Store
	Total   entities.Price
	Demand  *entities.Demand
}

// ComparisonEntry reports one registered store's evaluation against the
// consolidated demand. Entries are identified by the store's opaque ID, so
// stores sharing a display name never collide.
type ComparisonEntry struct {
	StoreID     uuid.UUID
	StoreName   string
	Feasible    bool
	Total       entities.Price
	Unavailable []entities.ItemName
}

// ComparisonReport holds one entry per registered store, in registration
// order, together with the demand they were evaluated against.
type ComparisonReport struct {
	Demand  *entities.Demand
	Entries []ComparisonEntry
}

// Entry returns the entry for the given store ID.
func (r *ComparisonReport) Entry(id uuid.UUID) (ComparisonEntry, bool) {
	for _, entry := range r.Entries {
		if entry.StoreID == id {
			return entry, true
		}
	}
	return ComparisonEntry{}, false
}
