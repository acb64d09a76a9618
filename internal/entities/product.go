package entities

import "github.com/shopspring/decimal"

// Product is owned by the catalog; checkout only reads it and moves its stock.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}
