package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dsandoval/shopplan/pkg/application/dto"
)

// Render writes the comparison report and cheapest-store result in the
// requested format.
func Render(w io.Writer, report *dto.ComparisonReport, cheapest *dto.CheapestResult, format string) error {
	switch format {
	case "text":
		return renderText(w, report, cheapest)
	case "json":
		return renderJSON(w, report, cheapest)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderText(w io.Writer, report *dto.ComparisonReport, cheapest *dto.CheapestResult) error {
	printHeader(w, "CONSOLIDATED SHOPPING LIST")
	if report.Demand.Empty() {
		fmt.Fprintln(w, "  (no items requested)")
	}
	for _, item := range report.Demand.Items() {
		fmt.Fprintf(w, "  - %s: %d\n", item, report.Demand.Get(item))
	}

	printHeader(w, "PRICE COMPARISON BY STORE")
	if len(report.Entries) == 0 {
		fmt.Fprintln(w, "  (no stores registered)")
	}
	for _, entry := range report.Entries {
		fmt.Fprintf(w, "\n%s:\n", entry.StoreName)
		if !entry.Feasible {
			names := make([]string, len(entry.Unavailable))
			for i, item := range entry.Unavailable {
				names[i] = string(item)
			}
			fmt.Fprintf(w, "  Status: Unavailable items - %s\n", strings.Join(names, ", "))
		} else {
			fmt.Fprintf(w, "  Total Cost: $%s\n", entry.Total.StringFixed(2))
		}
	}

	printHeader(w, "CHEAPEST OPTION")
	switch cheapest.Outcome {
	case dto.OutcomeFound:
		fmt.Fprintf(w, "\nCheapest Store: %s\n", cheapest.Store.Name)
		fmt.Fprintf(w, "Total Cost: $%s\n", cheapest.Total.StringFixed(2))
		fmt.Fprintln(w, "\nItemized Breakdown:")
		for _, item := range cheapest.Demand.Items() {
			qty := cheapest.Demand.Get(item)
			price, _ := cheapest.Store.PriceOf(item)
			subtotal := price.Mul(qtyDecimal(int64(qty)))
			fmt.Fprintf(w, "  - %s: %d x $%s = $%s\n", item, qty, price.StringFixed(2), subtotal.StringFixed(2))
		}
		renderSavings(w, report, cheapest)
	case dto.OutcomeNoDemand:
		fmt.Fprintln(w, "\nNo items have been requested yet.")
	case dto.OutcomeNoStores:
		fmt.Fprintln(w, "\nNo stores registered to compare.")
	case dto.OutcomeNoFeasibleStore:
		fmt.Fprintln(w, "\nNo store has all required items in stock.")
	}

	return nil
}

type jsonDemandLine struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

type jsonStoreEntry struct {
	ID          string   `json:"id"`
	Store       string   `json:"store"`
	Feasible    bool     `json:"feasible"`
	Total       string   `json:"total,omitempty"`
	Unavailable []string `json:"unavailable_items,omitempty"`
}

type jsonCheapest struct {
	Store string `json:"store"`
	ID    string `json:"id"`
	Total string `json:"total"`
}

type jsonPlan struct {
	Demand   []jsonDemandLine `json:"demand"`
	Stores   []jsonStoreEntry `json:"stores"`
	Outcome  string           `json:"outcome"`
	Cheapest *jsonCheapest    `json:"cheapest,omitempty"`
}

func renderJSON(w io.Writer, report *dto.ComparisonReport, cheapest *dto.CheapestResult) error {
	plan := jsonPlan{
		Demand:  make([]jsonDemandLine, 0, report.Demand.Len()),
		Stores:  make([]jsonStoreEntry, 0, len(report.Entries)),
		Outcome: cheapest.Outcome.String(),
	}

	for _, item := range report.Demand.Items() {
		plan.Demand = append(plan.Demand, jsonDemandLine{
			Item:     string(item),
			Quantity: int64(report.Demand.Get(item)),
		})
	}

	for _, entry := range report.Entries {
		out := jsonStoreEntry{
			ID:       entry.StoreID.String(),
			Store:    entry.StoreName,
			Feasible: entry.Feasible,
		}
		if entry.Feasible {
			out.Total = entry.Total.StringFixed(2)
		} else {
			for _, item := range entry.Unavailable {
				out.Unavailable = append(out.Unavailable, string(item))
			}
		}
		plan.Stores = append(plan.Stores, out)
	}

	if cheapest.Outcome == dto.OutcomeFound {
		plan.Cheapest = &jsonCheapest{
			Store: cheapest.Store.Name,
			ID:    cheapest.Store.ID.String(),
			Total: cheapest.Total.StringFixed(2),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(plan)
}

// renderSavings reports how much the cheapest store saves against the most
// expensive fully-stocked alternative. Needs at least two feasible stores.
func renderSavings(w io.Writer, report *dto.ComparisonReport, cheapest *dto.CheapestResult) {
	feasible := 0
	maxTotal := decimal.Zero
	for _, entry := range report.Entries {
		if !entry.Feasible {
			continue
		}
		feasible++
		if entry.Total.GreaterThan(maxTotal) {
			maxTotal = entry.Total
		}
	}
	if feasible < 2 {
		return
	}

	savings := maxTotal.Sub(cheapest.Total)
	if !savings.IsPositive() {
		return
	}

	pct := savings.Div(maxTotal).Mul(decimal.NewFromInt(100))
	fmt.Fprintf(w, "\nYou save $%s (%.1f%%) vs. most expensive option!\n",
		savings.StringFixed(2), pct.InexactFloat64())
}

func qtyDecimal(q int64) decimal.Decimal {
	return decimal.NewFromInt(q)
}

func printHeader(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", strings.Repeat("=", 60), text, strings.Repeat("=", 60))
}
