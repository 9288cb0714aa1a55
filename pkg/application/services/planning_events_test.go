package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/infrastructure/events"
	"github.com/dsandoval/shopplan/pkg/infrastructure/repositories/memory"
)

func TestPlanningService_EmitsEvents(t *testing.T) {
	store := events.NewInMemoryEventStore()
	svc := NewPlanningServiceWithConfig(
		memory.NewOfficeRepository(),
		memory.NewStoreRepository(),
		Config{Logger: zerolog.Nop(), Events: store},
	)

	office := entities.NewOffice("Office 1")
	require.NoError(t, svc.AddOffice(office))
	svc.RequestSupply(office, "Pens", 10)

	shop := entities.NewStore("Store A")
	require.NoError(t, svc.AddStore(shop))
	svc.SetPrice(shop, "Pens", price(1.00))

	_, err := svc.PriceComparison()
	require.NoError(t, err)

	result, err := svc.FindCheapestStore()
	require.NoError(t, err)
	require.NotNil(t, result.Store)

	officeEvents, err := store.ReadEvents(events.OfficeStream(office.ID), 1)
	require.NoError(t, err)
	require.Len(t, officeEvents, 2)
	assert.Equal(t, events.OfficeRegisteredEvent, officeEvents[0].Type())
	assert.Equal(t, events.SupplyRequestedEvent, officeEvents[1].Type())
	assert.Equal(t, 1, officeEvents[0].Version())
	assert.Equal(t, 2, officeEvents[1].Version())

	planning, err := store.ReadEvents(events.PlanningStream, 1)
	require.NoError(t, err)
	require.Len(t, planning, 2)
	assert.Equal(t, events.ComparisonCompletedEvent, planning[0].Type())
	assert.Equal(t, events.CheapestStoreSelectedEvent, planning[1].Type())

	selected, ok := planning[1].Data().(events.CheapestStoreSelected)
	require.True(t, ok)
	assert.Equal(t, shop.ID, selected.StoreID)
	assert.Equal(t, "10", selected.Total)
}

// recordingHandler captures the events it is dispatched.
type recordingHandler struct {
	types    []string
	received []events.Event
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	for _, t := range h.types {
		if t == eventType {
			return true
		}
	}
	return false
}

func (h *recordingHandler) Handle(event events.Event) error {
	h.received = append(h.received, event)
	return nil
}

func TestPlanningService_SubscriberObservesSelection(t *testing.T) {
	store := events.NewInMemoryEventStore()
	handler := &recordingHandler{types: []string{events.CheapestStoreSelectedEvent}}
	require.NoError(t, store.Subscribe([]string{events.CheapestStoreSelectedEvent}, handler))

	svc := NewPlanningServiceWithConfig(
		memory.NewOfficeRepository(),
		memory.NewStoreRepository(),
		Config{Logger: zerolog.Nop(), Events: store},
	)

	office := entities.NewOffice("Office 1")
	require.NoError(t, svc.AddOffice(office))
	svc.RequestSupply(office, "Pens", 10)

	shop := entities.NewStore("Store A")
	require.NoError(t, svc.AddStore(shop))
	svc.SetPrice(shop, "Pens", price(1.00))

	// Registration and comparison events are not in the subscription.
	_, err := svc.PriceComparison()
	require.NoError(t, err)
	assert.Empty(t, handler.received)

	_, err = svc.FindCheapestStore()
	require.NoError(t, err)

	require.Len(t, handler.received, 1)
	assert.Equal(t, events.CheapestStoreSelectedEvent, handler.received[0].Type())
	selected, ok := handler.received[0].Data().(events.CheapestStoreSelected)
	require.True(t, ok)
	assert.Equal(t, shop.ID, selected.StoreID)
}

func TestInMemoryEventStore_UnsubscribeStopsDelivery(t *testing.T) {
	store := events.NewInMemoryEventStore()
	handler := &recordingHandler{types: []string{events.PriceSetEvent}}
	require.NoError(t, store.Subscribe([]string{events.PriceSetEvent}, handler))

	svc := NewPlanningServiceWithConfig(
		memory.NewOfficeRepository(),
		memory.NewStoreRepository(),
		Config{Logger: zerolog.Nop(), Events: store},
	)

	shop := entities.NewStore("Store A")
	require.NoError(t, svc.AddStore(shop))
	svc.SetPrice(shop, "Pens", price(1.00))
	require.Len(t, handler.received, 1)

	require.NoError(t, store.Unsubscribe(handler))
	svc.SetPrice(shop, "Paper", price(5.00))
	assert.Len(t, handler.received, 1, "no delivery after unsubscribe")
}

func TestSelectionLogger_CanHandle(t *testing.T) {
	handler := NewSelectionLogger(zerolog.Nop())

	assert.True(t, handler.CanHandle(events.CheapestStoreSelectedEvent))
	assert.True(t, handler.CanHandle(events.ComparisonCompletedEvent))
	assert.False(t, handler.CanHandle(events.PriceSetEvent))

	event := events.NewEvent(events.CheapestStoreSelectedEvent, events.PlanningStream,
		events.CheapestStoreSelected{Name: "Store A", Total: "45"})
	assert.NoError(t, handler.Handle(event))
}

func TestPlanningService_NoEventStoreIsQuiet(t *testing.T) {
	svc := newService(t)

	office := entities.NewOffice("Office 1")
	require.NoError(t, svc.AddOffice(office))
	svc.RequestSupply(office, "Pens", 1)

	_, err := svc.PriceComparison()
	assert.NoError(t, err)
}
