package snapshot

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

func TestCatalogRoundTrip(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "b", Name: "Sugar 1kg", Price: decimal.RequireFromString("45")},
		{ID: "a", Name: "Tea Leaves 250g", Price: decimal.RequireFromString("90.25")},
	}

	first, err := EncodeCatalog(items)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeCatalog(first)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(items) {
		t.Fatalf("got %d items, want %d", len(decoded), len(items))
	}
	for i := range items {
		if decoded[i].ID != items[i].ID || decoded[i].Name != items[i].Name || !decoded[i].Price.Equal(items[i].Price) {
			t.Errorf("item %d: got %+v, want %+v", i, decoded[i], items[i])
		}
	}

	second, err := EncodeCatalog(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("re-encoded catalog differs:\n%s\n%s", first, second)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	when := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	entries := []models.LedgerEntry{
		{
			ID:           "e1",
			CustomerName: "Ramesh Kumar",
			Date:         when,
			Kind:         models.KindSale,
			Amount:       decimal.RequireFromString("240"),
			LineItems: []models.LineItem{{
				ID:            "li1",
				CatalogItemID: "1",
				Name:          "Basmati Rice 1kg",
				UnitPrice:     decimal.RequireFromString("120"),
				Quantity:      decimal.RequireFromString("2"),
			}},
		},
		{
			ID:           "e2",
			CustomerName: "Ramesh Kumar",
			Date:         when.Add(time.Hour),
			Kind:         models.KindPayment,
			Amount:       decimal.RequireFromString("100"),
			Note:         "Partial payment in cash",
		},
	}

	first, err := EncodeEntries(entries)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeEntries(first)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d entries, want 2", len(decoded))
	}

	sale := decoded[0]
	if !sale.Date.Equal(when) {
		t.Errorf("date: got %v, want %v", sale.Date, when)
	}
	if len(sale.LineItems) != 1 || sale.LineItems[0].CatalogItemID != "1" || !sale.LineItems[0].Quantity.Equal(decimal.NewFromInt(2)) {
		t.Errorf("line items: got %+v", sale.LineItems)
	}
	payment := decoded[1]
	if payment.Kind != models.KindPayment || payment.Note != "Partial payment in cash" || payment.LineItems != nil {
		t.Errorf("payment: got %+v", payment)
	}

	second, err := EncodeEntries(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("re-encoded entries differ:\n%s\n%s", first, second)
	}
}

func TestDecodeEntriesRejectsUnknownKind(t *testing.T) {
	data := []byte(`[{"id":"x","customerName":"Asha","date":"2025-01-01T00:00:00Z","kind":"REFUND","amount":"1"}]`)
	if _, err := DecodeEntries(data); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestDecodeEntriesRejectsBadDate(t *testing.T) {
	data := []byte(`[{"id":"x","customerName":"Asha","date":"yesterday","kind":"SALE","amount":"1"}]`)
	if _, err := DecodeEntries(data); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
