// Package snapshot encodes the catalog and entries records written through a
// persistence gateway. Encoding is deterministic: decoding a record and
// encoding it again yields the same bytes.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

// Gateway keys for the two independent records.
const (
	KeyCatalog = "catalog"
	KeyEntries = "entries"
)

const dateLayout = time.RFC3339Nano

type catalogRecord struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type lineItemRecord struct {
	ID            string          `json:"id"`
	CatalogItemID string          `json:"catalogItemId"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      decimal.Decimal `json:"quantity"`
}

type entryRecord struct {
	ID           string           `json:"id"`
	CustomerName string           `json:"customerName"`
	Date         string           `json:"date"`
	Kind         models.EntryKind `json:"kind"`
	Amount       decimal.Decimal  `json:"amount"`
	LineItems    []lineItemRecord `json:"lineItems,omitempty"`
	Note         string           `json:"note,omitempty"`
}

func EncodeCatalog(items []models.CatalogItem) ([]byte, error) {
	records := make([]catalogRecord, 0, len(items))
	for _, it := range items {
		records = append(records, catalogRecord{ID: it.ID, Name: it.Name, Price: it.Price})
	}
	return json.Marshal(records)
}

func DecodeCatalog(data []byte) ([]models.CatalogItem, error) {
	var records []catalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog record: %w", err)
	}
	items := make([]models.CatalogItem, 0, len(records))
	for _, r := range records {
		items = append(items, models.CatalogItem{ID: r.ID, Name: r.Name, Price: r.Price})
	}
	return items, nil
}

func EncodeEntries(entries []models.LedgerEntry) ([]byte, error) {
	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		rec := entryRecord{
			ID:           e.ID,
			CustomerName: e.CustomerName,
			Date:         e.Date.UTC().Format(dateLayout),
			Kind:         e.Kind,
			Amount:       e.Amount,
			Note:         e.Note,
		}
		for _, li := range e.LineItems {
			rec.LineItems = append(rec.LineItems, lineItemRecord{
				ID:            li.ID,
				CatalogItemID: li.CatalogItemID,
				Name:          li.Name,
				UnitPrice:     li.UnitPrice,
				Quantity:      li.Quantity,
			})
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

func DecodeEntries(data []byte) ([]models.LedgerEntry, error) {
	var records []entryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode entries record: %w", err)
	}
	entries := make([]models.LedgerEntry, 0, len(records))
	for _, r := range records {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("decode entry %s date: %w", r.ID, err)
		}
		if !r.Kind.Valid() {
			return nil, fmt.Errorf("decode entry %s: unknown kind %q", r.ID, r.Kind)
		}
		e := models.LedgerEntry{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			Date:         date,
			Kind:         r.Kind,
			Amount:       r.Amount,
			Note:         r.Note,
		}
		for _, li := range r.LineItems {
			e.LineItems = append(e.LineItems, models.LineItem{
				ID:            li.ID,
				CatalogItemID: li.CatalogItemID,
				Name:          li.Name,
				UnitPrice:     li.UnitPrice,
				Quantity:      li.Quantity,
			})
		}
		entries = append(entries, e)
	}
	return entries, nil
}
