package commands

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dsandoval/shopplan/pkg/application/services"
	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/infrastructure/repositories/memory"
	"github.com/dsandoval/shopplan/pkg/interfaces/cli/output"
)

func demoCmd(logger *zerolog.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the canned four-office, three-store scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			eventStore, err := newEventStore(logger)
			if err != nil {
				return err
			}

			svc := services.NewPlanningServiceWithConfig(
				memory.NewOfficeRepository(),
				memory.NewStoreRepository(),
				services.Config{Logger: *logger, Events: eventStore},
			)

			if err := buildDemoScenario(svc); err != nil {
				return err
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

	cmd.Flags().StringVar(&format, "format", envDefault("SHOPPLAN_FORMAT", "text"), "output format: text, json")
	return cmd
}

// buildDemoScenario registers four offices and three fully-stocked stores.
func buildDemoScenario(svc *services.PlanningService) error {
	type request struct {
		item entities.ItemName
		qty  entities.Quantity
	}

	offices := []struct {
		name     string
		requests []request
	}{
		{"Office 1 - New York", []request{{"Pens", 10}, {"Paper Reams", 5}, {"Staplers", 2}}},
		{"Office 2 - Boston", []request{{"Pens", 15}, {"Paper Reams", 3}, {"Folders", 20}}},
		{"Office 3 - Chicago", []request{{"Paper Reams", 7}, {"Folders", 10}, {"Markers", 8}}},
		{"Office 4 - Seattle", []request{{"Staplers", 3}, {"Markers", 12}, {"Pens", 5}}},
	}

	for _, spec := range offices {
		office := entities.NewOffice(spec.name)
		if err := svc.AddOffice(office); err != nil {
			return err
		}
		for _, req := range spec.requests {
			svc.RequestSupply(office, req.item, req.qty)
		}
	}

	type listing struct {
		item  entities.ItemName
		price string
	}

	stores := []struct {
		name     string
		listings []listing
	}{
		{"Office Depot", []listing{
			{"Pens", "1.50"}, {"Paper Reams", "8.00"}, {"Staplers", "5.00"},
			{"Folders", "0.50"}, {"Markers", "2.00"},
		}},
		{"Staples", []listing{
			{"Pens", "1.25"}, {"Paper Reams", "8.50"}, {"Staplers", "4.50"},
			{"Folders", "0.60"}, {"Markers", "1.75"},
		}},
		{"Amazon", []listing{
			{"Pens", "1.00"}, {"Paper Reams", "7.50"}, {"Staplers", "4.00"},
			{"Folders", "0.45"}, {"Markers", "1.80"},
		}},
	}

	for _, spec := range stores {
		store := entities.NewStore(spec.name)
		if err := svc.AddStore(store); err != nil {
			return err
		}
		for _, l := range spec.listings {
			price, err := decimal.NewFromString(l.price)
			if err != nil {
				return err
			}
			svc.SetPrice(store, l.item, price)
		}
	}

	return nil
}
