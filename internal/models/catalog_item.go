package models

import "github.com/shopspring/decimal"

// CatalogItem is a sellable good with its current default price.
type CatalogItem struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// CatalogUpdate carries the fields to merge into an existing item; nil fields
// are left untouched.
type CatalogUpdate struct {
	Name  *string
	Price *decimal.Decimal
}
