package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

// SampleEntries builds a demo customer history from the first catalog item:
// two units sold on credit and a partial cash payment. It returns nil for an
// empty catalog.
func SampleEntries(items []models.CatalogItem, now time.Time) []models.LedgerEntry {
	if len(items) == 0 {
		return nil
	}
	c := NewComposer(WithClock(func() time.Time { return now }))

	line := LineFromCatalog(items[0])
	line.Quantity = decimal.NewFromInt(2)
	sale, err := c.Compose(models.KindSale, "Ramesh Kumar", Draft{Lines: []LineDraft{line}})
	if err != nil {
		return nil
	}
	payment, err := c.Compose(models.KindPayment, "Ramesh Kumar", Draft{Amount: "100", Note: "Partial payment in cash"})
	if err != nil {
		return nil
	}
	return []models.LedgerEntry{sale, payment}
}
