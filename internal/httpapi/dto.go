package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

type catalogItemJSON struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type addItemRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type updateItemRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type lineRequest struct {
	CatalogItemID string           `json:"catalogItemId"`
	Name          string           `json:"name"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	Quantity      decimal.Decimal  `json:"quantity"`
}

type entryRequest struct {
	Kind         models.EntryKind `json:"kind"`
	CustomerName string           `json:"customerName"`
	Lines        []lineRequest    `json:"lines"`
	Amount       string           `json:"amount"`
	Note         string           `json:"note"`
}

type lineItemJSON struct {
	ID            string          `json:"id"`
	CatalogItemID string          `json:"catalogItemId"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      decimal.Decimal `json:"quantity"`
}

type entryJSON struct {
	ID           string           `json:"id"`
	CustomerName string           `json:"customerName"`
	Date         time.Time        `json:"date"`
	Kind         models.EntryKind `json:"kind"`
	Amount       decimal.Decimal  `json:"amount"`
	LineItems    []lineItemJSON   `json:"lineItems,omitempty"`
	Note         string           `json:"note,omitempty"`
}

type summaryJSON struct {
	CustomerName  string          `json:"customerName"`
	TotalOwed     decimal.Decimal `json:"totalOwed"`
	LastEntryDate time.Time       `json:"lastEntryDate"`
}

func toItemJSON(it models.CatalogItem) catalogItemJSON {
	return catalogItemJSON{ID: it.ID, Name: it.Name, Price: it.Price}
}

func toEntryJSON(e models.LedgerEntry) entryJSON {
	out := entryJSON{
		ID:           e.ID,
		CustomerName: e.CustomerName,
		Date:         e.Date,
		Kind:         e.Kind,
		Amount:       e.Amount,
		Note:         e.Note,
	}
	for _, li := range e.LineItems {
		out.LineItems = append(out.LineItems, lineItemJSON{
			ID:            li.ID,
			CatalogItemID: li.CatalogItemID,
			Name:          li.Name,
			UnitPrice:     li.UnitPrice,
			Quantity:      li.Quantity,
		})
	}
	return out
}

func toEntriesJSON(entries []models.LedgerEntry) []entryJSON {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryJSON(e))
	}
	return out
}

func toSummariesJSON(summaries []models.CustomerSummary) []summaryJSON {
	out := make([]summaryJSON, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryJSON{CustomerName: s.CustomerName, TotalOwed: s.TotalOwed, LastEntryDate: s.LastEntryDate})
	}
	return out
}
