package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells whether an entry raises or lowers a customer's balance.
type EntryKind string

const (
	KindSale    EntryKind = "SALE"
	KindPayment EntryKind = "PAYMENT"
)

// Valid reports whether k is one of the known entry kinds.
func (k EntryKind) Valid() bool {
	return k == KindSale || k == KindPayment
}

// LineItem is one priced, quantified good inside a sale.
// It is a snapshot taken at sale time: CatalogItemID is only a lookup aid and
// later catalog edits never reach back into it.
type LineItem struct {
	ID            string
	CatalogItemID string // weak reference, may name a deleted catalog item
	Name          string
	UnitPrice     decimal.Decimal
	Quantity      decimal.Decimal
}

// Subtotal is UnitPrice * Quantity without rounding.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(li.Quantity)
}

// LedgerEntry represents a single dated financial event for a customer
type LedgerEntry struct {
	ID           string          // unique identifier
	CustomerName string          // natural key of the customer, matched exactly
	Date         time.Time       // when the entry was composed
	Kind         EntryKind       // SALE or PAYMENT
	Amount       decimal.Decimal // always non-negative, the kind carries the sign
	LineItems    []LineItem      // only for SALE
	Note         string          // only for PAYMENT
}

// Signed returns the entry's effect on the customer's balance: positive for a
// sale, negative for a payment.
func (e LedgerEntry) Signed() decimal.Decimal {
	if e.Kind == KindPayment {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Clone returns a copy that shares no line item storage with e.
func (e LedgerEntry) Clone() LedgerEntry {
	if e.LineItems != nil {
		items := make([]LineItem, len(e.LineItems))
		copy(items, e.LineItems)
		e.LineItems = items
	}
	return e
}
