package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeEntryRecorded  = "entry_recorded"
	TypeEntryRemoved   = "entry_removed"
	TypeCatalogChanged = "catalog_changed"
)

type EntryRecorded struct {
	Type         string          `json:"type"`
	EntryID      string          `json:"entry_id"`
	CustomerName string          `json:"customer_name"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

type EntryRemoved struct {
	Type       string    `json:"type"`
	EntryID    string    `json:"entry_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CatalogChanged is published after add, update and remove. Price is empty on
// removal.
type CatalogChanged struct {
	Type       string           `json:"type"`
	Action     string           `json:"action"`
	ItemID     string           `json:"item_id"`
	Name       string           `json:"name,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
