package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/shopplan/pkg/application/dto"
	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/domain/repositories"
	"github.com/dsandoval/shopplan/pkg/infrastructure/events"
)

// Config holds optional collaborators for the planning service.
type Config struct {
	// Logger receives structured planning logs. Defaults to a no-op logger.
	Logger zerolog.Logger
	// Events receives typed planning events when non-nil.
	Events events.EventStore
}

// PlanningService consolidates office demand and compares store price books.
// It is a synchronous in-memory pipeline; merged demand is computed fresh on
// every call and never cached. The service is not safe for concurrent use.
type PlanningService struct {
	offices repositories.OfficeRepository
	stores  repositories.StoreRepository
	logger  zerolog.Logger
	events  events.EventStore
}

// NewPlanningService creates a planning service with no logging or events.
func NewPlanningService(offices repositories.OfficeRepository, stores repositories.StoreRepository) *PlanningService {
	return NewPlanningServiceWithConfig(offices, stores, Config{Logger: zerolog.Nop()})
}

// NewPlanningServiceWithConfig creates a planning service with the given
// collaborators.
func NewPlanningServiceWithConfig(offices repositories.OfficeRepository, stores repositories.StoreRepository, config Config) *PlanningService {
	return &PlanningService{
		offices: offices,
		stores:  stores,
		logger:  config.Logger,
		events:  config.Events,
	}
}

// AddOffice registers an office. Registration order is preserved and names
// are not required to be unique.
func (s *PlanningService) AddOffice(office *entities.Office) error {
	if err := s.offices.Add(office); err != nil {
		return fmt.Errorf("failed to add office %s: %w", office.Name, err)
	}

	s.logger.Debug().Str("office", office.Name).Str("id", office.ID.String()).Msg("office registered")
	s.emit(events.OfficeStream(office.ID), events.OfficeRegisteredEvent, events.OfficeRegistered{
		OfficeID: office.ID,
		Name:     office.Name,
	})
	return nil
}

// AddStore registers a store. Registration order is preserved and names are
// not required to be unique.
func (s *PlanningService) AddStore(store *entities.Store) error {
	if err := s.stores.Add(store); err != nil {
		return fmt.Errorf("failed to add store %s: %w", store.Name, err)
	}

	s.logger.Debug().Str("store", store.Name).Str("id", store.ID.String()).Msg("store registered")
	s.emit(events.StoreStream(store.ID), events.StoreRegisteredEvent, events.StoreRegistered{
		StoreID: store.ID,
		Name:    store.Name,
	})
	return nil
}

// RequestSupply records demand for an item on behalf of an office.
func (s *PlanningService) RequestSupply(office *entities.Office, item entities.ItemName, qty entities.Quantity) {
	office.AddItem(item, qty)

	s.emit(events.OfficeStream(office.ID), events.SupplyRequestedEvent, events.SupplyRequested{
		OfficeID: office.ID,
		Item:     string(item),
		Quantity: int64(qty),
	})
}

// SetPrice records a unit price on a store's price book.
func (s *PlanningService) SetPrice(store *entities.Store, item entities.ItemName, price entities.Price) {
	store.SetPrice(item, price)

	s.emit(events.StoreStream(store.ID), events.PriceSetEvent, events.PriceSet{
		StoreID: store.ID,
		Item:    string(item),
		Price:   price.String(),
	})
}

// MergeSupplies consolidates every office's demand into one mapping. Sums
// are order-independent; item order in the result is first-seen across
// offices in registration order. No offices, or offices with empty demand,
// yield an empty mapping.
func (s *PlanningService) MergeSupplies() (*entities.Demand, error) {
	offices, err := s.offices.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	merged := entities.NewDemand()
	for _, office := range offices {
		supplies := office.Supplies()
		for _, item := range supplies.Items() {
			merged.Add(item, supplies.Get(item))
		}
	}
	return merged, nil
}

// EvaluateStore prices the given demand against a single store. Items the
// store does not sell are reported in Missing, in the order the demand
// lists them, and contribute nothing to Total. The total is partial when
// Missing is non-empty.
func (s *PlanningService) EvaluateStore(store *entities.Store, demand *entities.Demand) entities.StoreEvaluation {
	total := decimal.Zero
	var missing []entities.ItemName

	for _, item := range demand.Items() {
		price, ok := store.PriceOf(item)
		if !ok {
			missing = append(missing, item)
			continue
		}
		qty := decimal.NewFromInt(int64(demand.Get(item)))
		total = total.Add(price.Mul(qty))
	}

	return entities.StoreEvaluation{Total: total, Missing: missing}
}

// FindCheapestStore merges all office demand and selects the cheapest store
// that prices every demanded item. Comparison is strict, so the earliest
// minimal store in registration order wins ties. The empty cases are
// reported through the result's Outcome instead of sentinel totals.
func (s *PlanningService) FindCheapestStore() (*dto.CheapestResult, error) {
	demand, err := s.MergeSupplies()
	if err != nil {
		return nil, err
	}

	if demand.Empty() {
		return &dto.CheapestResult{Outcome: dto.OutcomeNoDemand, Total: decimal.Zero, Demand: demand}, nil
	}

	stores, err := s.stores.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	if len(stores) == 0 {
		return &dto.CheapestResult{Outcome: dto.OutcomeNoStores, Total: decimal.Zero, Demand: demand}, nil
	}

	var cheapest *entities.Store
	var cheapestTotal entities.Price

	for _, store := range stores {
		eval := s.EvaluateStore(store, demand)
		if !eval.Feasible() {
			s.logger.Debug().
				Str("store", store.Name).
				Int("missing", len(eval.Missing)).
				Msg("store skipped, demand not fully stocked")
			continue
		}
		if cheapest == nil || eval.Total.LessThan(cheapestTotal) {
			cheapest = store
			cheapestTotal = eval.Total
		}
	}

	if cheapest == nil {
		return &dto.CheapestResult{Outcome: dto.OutcomeNoFeasibleStore, Total: decimal.Zero, Demand: demand}, nil
	}

	s.logger.Info().
		Str("store", cheapest.Name).
		Str("total", cheapestTotal.StringFixed(2)).
		Int("items", demand.Len()).
		Msg("cheapest store selected")
	s.emit(events.PlanningStream, events.CheapestStoreSelectedEvent, events.CheapestStoreSelected{
		StoreID: cheapest.ID,
		Name:    cheapest.Name,
		Total:   cheapestTotal.String(),
	})

	return &dto.CheapestResult{
		Outcome: dto.OutcomeFound,
		Store:   cheapest,
		Total:   cheapestTotal,
		Demand:  demand,
	}, nil
}

// PriceComparison evaluates every registered store against the merged
// demand. One entry per store in registration order, keyed by the store's
// opaque ID. Infeasible stores carry a zero total and the unavailable items
// in the order the demand lists them.
func (s *PlanningService) PriceComparison() (*dto.ComparisonReport, error) {
	demand, err := s.MergeSupplies()
	if err != nil {
		return nil, err
	}

	stores, err := s.stores.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	report := &dto.ComparisonReport{
		Demand:  demand,
		Entries: make([]dto.ComparisonEntry, 0, len(stores)),
	}

	for _, store := range stores {
		eval := s.EvaluateStore(store, demand)
		entry := dto.ComparisonEntry{
			StoreID:     store.ID,
			StoreName:   store.Name,
			Feasible:    eval.Feasible(),
			Total:       decimal.Zero,
			Unavailable: eval.Missing,
		}
		if entry.Feasible {
			entry.Total = eval.Total
		}
		report.Entries = append(report.Entries, entry)
	}

	s.emit(events.PlanningStream, events.ComparisonCompletedEvent, events.ComparisonCompleted{
		Items:  demand.Len(),
		Stores: len(stores),
	})

	return report, nil
}

func (s *PlanningService) emit(streamID, eventType string, data interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendEvent(streamID, events.NewEvent(eventType, streamID, data)); err != nil {
		s.logger.Warn().Err(err).Str("event", eventType).Msg("failed to append event")
	}
}
