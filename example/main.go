package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/dsandoval/shopplan/pkg/application/dto"
	"github.com/dsandoval/shopplan/pkg/application/services"
	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/infrastructure/repositories/memory"
)

func main() {
	svc := services.NewPlanningService(memory.NewOfficeRepository(), memory.NewStoreRepository())

	// Four offices with overlapping supply needs
	newYork := entities.NewOffice("Office 1 - New York")
	newYork.AddItem("Pens", 10)
	newYork.AddItem("Paper Reams", 5)
	newYork.AddItem("Staplers", 2)

	boston := entities.NewOffice("Office 2 - Boston")
	boston.AddItem("Pens", 15)
	boston.AddItem("Paper Reams", 3)
	boston.AddItem("Folders", 20)

	chicago := entities.NewOffice("Office 3 - Chicago")
	chicago.AddItem("Paper Reams", 7)
	chicago.AddItem("Folders", 10)
	chicago.AddItem("Markers", 8)

	seattle := entities.NewOffice("Office 4 - Seattle")
	seattle.AddItem("Staplers", 3)
	seattle.AddItem("Markers", 12)
	seattle.AddItem("Pens", 5)

	for _, office := range []*entities.Office{newYork, boston, chicago, seattle} {
		must(svc.AddOffice(office))
	}

	// Three stores with full price books
	depot := entities.NewStore("Office Depot")
	depot.SetPrice("Pens", dec("1.50"))
	depot.SetPrice("Paper Reams", dec("8.00"))
	depot.SetPrice("Staplers", dec("5.00"))
	depot.SetPrice("Folders", dec("0.50"))
	depot.SetPrice("Markers", dec("2.00"))

	staples := entities.NewStore("Staples")
	staples.SetPrice("Pens", dec("1.25"))
	staples.SetPrice("Paper Reams", dec("8.50"))
	staples.SetPrice("Staplers", dec("4.50"))
	staples.SetPrice("Folders", dec("0.60"))
	staples.SetPrice("Markers", dec("1.75"))

	amazon := entities.NewStore("Amazon")
	amazon.SetPrice("Pens", dec("1.00"))
	amazon.SetPrice("Paper Reams", dec("7.50"))
	amazon.SetPrice("Staplers", dec("4.00"))
	amazon.SetPrice("Folders", dec("0.45"))
	amazon.SetPrice("Markers", dec("1.80"))

	for _, store := range []*entities.Store{depot, staples, amazon} {
		must(svc.AddStore(store))
	}

	merged, err := svc.MergeSupplies()
	must(err)

	fmt.Println("Consolidated shopping list from 4 offices:")
	for _, item := range merged.Items() {
		fmt.Printf("  - %s: %d\n", item, merged.Get(item))
	}
	fmt.Println()

	report, err := svc.PriceComparison()
	must(err)

	fmt.Println("Price comparison:")
	for _, entry := range report.Entries {
		if entry.Feasible {
			fmt.Printf("  %s: $%s\n", entry.StoreName, entry.Total.StringFixed(2))
		} else {
			fmt.Printf("  %s: missing %d item(s)\n", entry.StoreName, len(entry.Unavailable))
		}
	}
	fmt.Println()

	cheapest, err := svc.FindCheapestStore()
	must(err)

	if cheapest.Outcome != dto.OutcomeFound {
		fmt.Printf("No store can fulfil the full list (%s)\n", cheapest.Outcome)
		return
	}

	fmt.Printf("Cheapest store: %s at $%s\n", cheapest.Store.Name, cheapest.Total.StringFixed(2))
	fmt.Println("Itemized breakdown:")
	for _, item := range cheapest.Demand.Items() {
		qty := cheapest.Demand.Get(item)
		price, _ := cheapest.Store.PriceOf(item)
		subtotal := price.Mul(decimal.NewFromInt(int64(qty)))
		fmt.Printf("  - %s: %d x $%s = $%s\n", item, qty, price.StringFixed(2), subtotal.StringFixed(2))
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
