package entities

import "github.com/shopspring/decimal"

// ItemName identifies a supply item by its display name.
type ItemName string

// Quantity represents an integer quantity of discrete supply units.
type Quantity int64

// Price represents a per-unit price in plain decimal arithmetic.
type Price = decimal.Decimal
