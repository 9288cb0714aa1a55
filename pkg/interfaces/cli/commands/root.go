package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dsandoval/shopplan/pkg/application/services"
	"github.com/dsandoval/shopplan/pkg/infrastructure/events"
)

var verbose bool

// Execute builds the command tree and runs it.
func Execute(logger zerolog.Logger) error {
	root := &cobra.Command{
		Use:           "shopplan",
		Short:         "Consolidate office supply demand and find the cheapest store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				logger = logger.Level(zerolog.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		planCmd(&logger),
		demoCmd(&logger),
		interactiveCmd(&logger),
	)

	return root.Execute()
}

// newEventStore builds an event store with the selection logger subscribed,
// so planning outcomes surface in the logs as they happen.
func newEventStore(logger *zerolog.Logger) (*events.InMemoryEventStore, error) {
	store := events.NewInMemoryEventStore()
	err := store.Subscribe(
		[]string{events.ComparisonCompletedEvent, events.CheapestStoreSelectedEvent},
		services.NewSelectionLogger(*logger),
	)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// envDefault returns the environment value for key, or fallback when unset.
// Defaults come from the environment (optionally a .env file loaded in main).
func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
