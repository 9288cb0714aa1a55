package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dsandoval/shopplan/pkg/application/services"
	"github.com/dsandoval/shopplan/pkg/infrastructure/repositories/csv"
	"github.com/dsandoval/shopplan/pkg/infrastructure/repositories/memory"
	"github.com/dsandoval/shopplan/pkg/interfaces/cli/output"
)

func planCmd(logger *zerolog.Logger) *cobra.Command {
	var (
		officesFile string
		storesFile  string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Load offices and stores from CSV and report the cheapest store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if officesFile == "" {
				return fmt.Errorf("offices CSV required (--offices or SHOPPLAN_OFFICES)")
			}

			loader := csv.NewLoader()

			offices, err := loader.LoadOffices(officesFile)
			if err != nil {
				return fmt.Errorf("error loading offices: %w", err)
			}
			logger.Debug().Int("offices", len(offices)).Str("file", officesFile).Msg("offices loaded")

			eventStore, err := newEventStore(logger)
			if err != nil {
				return err
			}

			officeRepo := memory.NewOfficeRepository()
			storeRepo := memory.NewStoreRepository()
			svc := services.NewPlanningServiceWithConfig(officeRepo, storeRepo, services.Config{
				Logger: *logger,
				Events: eventStore,
			})

			for _, office := range offices {
				if err := svc.AddOffice(office); err != nil {
					return err
				}
			}

			if storesFile != "" {
				stores, err := loader.LoadStores(storesFile)
				if err != nil {
					return fmt.Errorf("error loading stores: %w", err)
				}
				logger.Debug().Int("stores", len(stores)).Str("file", storesFile).Msg("stores loaded")
				for _, store := range stores {
					if err := svc.AddStore(store); err != nil {
						return err
					}
				}
			}

			report, err := svc.PriceComparison()
			if err != nil {
				return err
			}
			cheapest, err := svc.FindCheapestStore()
			if err != nil {
				return err
			}

			return output.Render(cmd.OutOrStdout(), report, cheapest, format)
		},
	}

	cmd.Flags().StringVar(&officesFile, "offices", envDefault("SHOPPLAN_OFFICES", ""), "path to offices CSV (office,item,quantity)")
	cmd.Flags().StringVar(&storesFile, "stores", envDefault("SHOPPLAN_STORES", ""), "path to stores CSV (store,item,price)")
	cmd.Flags().StringVar(&format, "format", envDefault("SHOPPLAN_FORMAT", "text"), "output format: text, json")

	return cmd
}
