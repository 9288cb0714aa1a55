package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dsandoval/shopplan/pkg/domain/entities"
)

// Loader handles loading planning data from CSV files.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadOffices loads offices from a CSV file with the header
// office,item,quantity. Rows sharing an office name accumulate into the
// same office; office order follows first appearance.
func (l *Loader) LoadOffices(filename string) ([]*entities.Office, error) {
	records, err := readRecords(filename, []string{"office", "item", "quantity"})
	if err != nil {
		return nil, fmt.Errorf("offices CSV: %w", err)
	}

	var offices []*entities.Office
	byName := make(map[string]*entities.Office)

	for i, record := range records {
		name := strings.TrimSpace(record[0])
		item := strings.TrimSpace(record[1])
		if name == "" || item == "" {
			return nil, fmt.Errorf("offices CSV row %d: office and item must be non-empty", i+2)
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("offices CSV row %d: invalid quantity %q: %w", i+2, record[2], err)
		}
		if qty <= 0 {
			return nil, fmt.Errorf("offices CSV row %d: quantity must be positive, got %d", i+2, qty)
		}

		office, exists := byName[name]
		if !exists {
			office = entities.NewOffice(name)
			byName[name] = office
			offices = append(offices, office)
		}
		office.AddItem(entities.ItemName(item), entities.Quantity(qty))
	}

	return offices, nil
}

// LoadStores loads stores from a CSV file with the header
// store,item,price. Rows sharing a store name accumulate into the same
// store; store order follows first appearance.
func (l *Loader) LoadStores(filename string) ([]*entities.Store, error) {
	records, err := readRecords(filename, []string{"store", "item", "price"})
	if err != nil {
		return nil, fmt.Errorf("stores CSV: %w", err)
	}

	var stores []*entities.Store
	byName := make(map[string]*entities.Store)

	for i, record := range records {
		name := strings.TrimSpace(record[0])
		item := strings.TrimSpace(record[1])
		if name == "" || item == "" {
			return nil, fmt.Errorf("stores CSV row %d: store and item must be non-empty", i+2)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("stores CSV row %d: invalid price %q: %w", i+2, record[2], err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("stores CSV row %d: price must be non-negative, got %s", i+2, price)
		}

		store, exists := byName[name]
		if !exists {
			store = entities.NewStore(name)
			byName[name] = store
			stores = append(stores, store)
		}
		store.SetPrice(entities.ItemName(item), price)
	}

	return stores, nil
}

// readRecords opens a CSV file, validates its header and returns the data
// rows with the expected column count.
func readRecords(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have a header and at least one data row", filename)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("header mismatch in %s. Expected: %v, Got: %v", filename, expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), expected[i]) {
			return false
		}
	}
	return true
}
