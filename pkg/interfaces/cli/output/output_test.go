package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsandoval/shopplan/pkg/application/dto"
	"github.com/dsandoval/shopplan/pkg/domain/entities"
)

func buildFixture() (*dto.ComparisonReport, *dto.CheapestResult) {
	demand := entities.NewDemand()
	demand.Add("Pens", 15)
	demand.Add("Paper", 5)

	storeA := entities.NewStore("Store A")
	storeA.SetPrice("Pens", decimal.NewFromInt(1))
	storeA.SetPrice("Paper", decimal.NewFromInt(5))

	storeB := entities.NewStore("Store B")

	report := &dto.ComparisonReport{
		Demand: demand,
		Entries: []dto.ComparisonEntry{
			{StoreID: storeA.ID, StoreName: "Store A", Feasible: true, Total: decimal.NewFromInt(40)},
			{StoreID: storeB.ID, StoreName: "Store B", Feasible: false, Total: decimal.Zero,
				Unavailable: []entities.ItemName{"Pens", "Paper"}},
		},
	}

	cheapest := &dto.CheapestResult{
		Outcome: dto.OutcomeFound,
		Store:   storeA,
		Total:   decimal.NewFromInt(40),
		Demand:  demand,
	}
	return report, cheapest
}

func TestRender_Text(t *testing.T) {
	report, cheapest := buildFixture()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, cheapest, "text"))

	out := buf.String()
	assert.Contains(t, out, "- Pens: 15")
	assert.Contains(t, out, "Total Cost: $40.00")
	assert.Contains(t, out, "Unavailable items - Pens, Paper")
	assert.Contains(t, out, "Cheapest Store: Store A")
	assert.Contains(t, out, "- Pens: 15 x $1.00 = $15.00")
	assert.NotContains(t, out, "You save", "only one feasible store, no savings line")
}

func TestRender_TextSavingsSummary(t *testing.T) {
	report, cheapest := buildFixture()

	storeC := entities.NewStore("Store C")
	report.Entries = append(report.Entries, dto.ComparisonEntry{
		StoreID:   storeC.ID,
		StoreName: "Store C",
		Feasible:  true,
		Total:     decimal.NewFromInt(50),
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, cheapest, "text"))
	assert.Contains(t, buf.String(), "You save $10.00 (20.0%) vs. most expensive option!")
}

func TestRender_TextNoSavingsOnTie(t *testing.T) {
	report, cheapest := buildFixture()

	storeC := entities.NewStore("Store C")
	report.Entries = append(report.Entries, dto.ComparisonEntry{
		StoreID:   storeC.ID,
		StoreName: "Store C",
		Feasible:  true,
		Total:     decimal.NewFromInt(40),
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, cheapest, "text"))
	assert.NotContains(t, buf.String(), "You save", "equal totals yield no savings line")
}

func TestRender_TextNoFeasibleStore(t *testing.T) {
	report, _ := buildFixture()
	cheapest := &dto.CheapestResult{
		Outcome: dto.OutcomeNoFeasibleStore,
		Total:   decimal.Zero,
		Demand:  report.Demand,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, cheapest, "text"))
	assert.Contains(t, buf.String(), "No store has all required items in stock.")
}

func TestRender_JSON(t *testing.T) {
	report, cheapest := buildFixture()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, cheapest, "json"))

	var decoded struct {
		Demand []struct {
			Item     string `json:"item"`
			Quantity int64  `json:"quantity"`
		} `json:"demand"`
		Stores []struct {
			Store       string   `json:"store"`
			Feasible    bool     `json:"feasible"`
			Total       string   `json:"total"`
			Unavailable []string `json:"unavailable_items"`
		} `json:"stores"`
		Outcome  string `json:"outcome"`
		Cheapest *struct {
			Store string `json:"store"`
			Total string `json:"total"`
		} `json:"cheapest"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Demand, 2)
	assert.Equal(t, "Pens", decoded.Demand[0].Item)
	assert.Equal(t, int64(15), decoded.Demand[0].Quantity)

	require.Len(t, decoded.Stores, 2)
	assert.Equal(t, "40.00", decoded.Stores[0].Total)
	assert.Equal(t, []string{"Pens", "Paper"}, decoded.Stores[1].Unavailable)

	assert.Equal(t, "Found", decoded.Outcome)
	require.NotNil(t, decoded.Cheapest)
	assert.Equal(t, "Store A", decoded.Cheapest.Store)
	assert.Equal(t, "40.00", decoded.Cheapest.Total)
}

func TestRender_UnknownFormat(t *testing.T) {
	report, cheapest := buildFixture()
	err := Render(&bytes.Buffer{}, report, cheapest, "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
