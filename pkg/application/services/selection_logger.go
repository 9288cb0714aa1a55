package services

import (
	"github.com/rs/zerolog"

	"github.com/dsandoval/shopplan/pkg/infrastructure/events"
)

// SelectionLogger is an event handler that logs planning outcomes as they
// are appended to the event store.
type SelectionLogger struct {
	logger zerolog.Logger
}

// NewSelectionLogger creates a handler logging through the given logger.
func NewSelectionLogger(logger zerolog.Logger) *SelectionLogger {
	return &SelectionLogger{logger: logger}
}

// Verify interface compliance
var _ events.EventHandler = (*SelectionLogger)(nil)

// CanHandle reports whether the handler reacts to the given event type.
func (h *SelectionLogger) CanHandle(eventType string) bool {
	return eventType == events.ComparisonCompletedEvent ||
		eventType == events.CheapestStoreSelectedEvent
}

// Handle logs the event payload. It never fails.
func (h *SelectionLogger) Handle(event events.Event) error {
	switch data := event.Data().(type) {
	case events.ComparisonCompleted:
		h.logger.Debug().
			Int("items", data.Items).
			Int("stores", data.Stores).
			Msg("price comparison completed")
	case events.CheapestStoreSelected:
		h.logger.Info().
			Str("store", data.Name).
			Str("id", data.StoreID.String()).
			Str("total", data.Total).
			Msg("cheapest store selected")
	}
	return nil
}
