package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

// LineDraft is one row of a sale as entered. Rows with an empty name are
// dropped when the sale is composed.
type LineDraft struct {
	CatalogItemID string
	Name          string
	UnitPrice     decimal.Decimal
	Quantity      decimal.Decimal
}

// Draft is the user's input for a new entry. Lines are read for a sale;
// Amount and Note for a payment. Amount stays text so that an empty or
// unparseable value can be told apart from zero.
type Draft struct {
	Lines  []LineDraft
	Amount string
	Note   string
}

// LineFromCatalog pre-fills a sale row from a catalog item with quantity 1.
func LineFromCatalog(item models.CatalogItem) LineDraft {
	return LineDraft{
		CatalogItemID: item.ID,
		Name:          item.Name,
		UnitPrice:     item.Price,
		Quantity:      decimal.NewFromInt(1),
	}
}

// Composer turns a Draft into a LedgerEntry ready for the store.
type Composer struct {
	now   func() time.Time
	newID func() string
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithClock sets the source of entry dates.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) { c.now = now }
}

// WithLineIDGenerator replaces uuid-based line item ids.
func WithLineIDGenerator(f func() string) ComposerOption {
	return func(c *Composer) { c.newID = f }
}

func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose validates the draft for the given kind and builds the entry,
// dated now. The entry id is left for the store to assign.
func (c *Composer) Compose(kind models.EntryKind, customerName string, d Draft) (models.LedgerEntry, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return models.LedgerEntry{}, models.ValidationError{Field: "customerName", Message: "must not be empty"}
	}

	switch kind {
	case models.KindSale:
		return c.composeSale(customerName, d.Lines)
	case models.KindPayment:
		return c.composePayment(customerName, d.Amount, d.Note)
	default:
		return models.LedgerEntry{}, models.ValidationError{Field: "kind", Message: "must be SALE or PAYMENT"}
	}
}

func (c *Composer) composeSale(customerName string, lines []LineDraft) (models.LedgerEntry, error) {
	var items []models.LineItem
	amount := decimal.Zero

	for _, l := range lines {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		if l.UnitPrice.IsNegative() {
			return models.LedgerEntry{}, models.ValidationError{Field: "unitPrice", Message: name + ": must not be negative"}
		}
		if !l.Quantity.IsPositive() {
			return models.LedgerEntry{}, models.ValidationError{Field: "quantity", Message: name + ": must be greater than zero"}
		}
		li := models.LineItem{
			ID:            c.newID(),
			CatalogItemID: l.CatalogItemID,
			Name:          name,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
		}
		amount = amount.Add(li.Subtotal())
		items = append(items, li)
	}
	if len(items) == 0 {
		return models.LedgerEntry{}, models.ValidationError{Field: "lineItems", Message: "at least one item with a name is required"}
	}

	return models.LedgerEntry{
		CustomerName: customerName,
		Date:         c.now().UTC(),
		Kind:         models.KindSale,
		Amount:       amount,
		LineItems:    items,
	}, nil
}

func (c *Composer) composePayment(customerName, rawAmount, note string) (models.LedgerEntry, error) {
	rawAmount = strings.TrimSpace(rawAmount)
	if rawAmount == "" {
		return models.LedgerEntry{}, models.ValidationError{Field: "amount", Message: "payment amount is required"}
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return models.LedgerEntry{}, models.ValidationError{Field: "amount", Message: "not a number: " + rawAmount}
	}
	if amount.IsNegative() {
		return models.LedgerEntry{}, models.ValidationError{Field: "amount", Message: "must not be negative"}
	}

	return models.LedgerEntry{
		CustomerName: customerName,
		Date:         c.now().UTC(),
		Kind:         models.KindPayment,
		Amount:       amount,
		Note:         strings.TrimSpace(note),
	}, nil
}
