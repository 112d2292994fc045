package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerSummary is derived from a customer's entries and never stored.
// A positive TotalOwed means the customer owes the shop; negative is an advance.
type CustomerSummary struct {
	CustomerName  string
	TotalOwed     decimal.Decimal
	LastEntryDate time.Time
}
