package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
	"github.com/AmanBeast/Sotre-Ledgger/internal/snapshot"
	"github.com/AmanBeast/Sotre-Ledgger/internal/storage/memory"
)

var epoch = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// brokenGateway loads fine but refuses every save.
type brokenGateway struct{ *memory.MemoryGateway }

func (brokenGateway) Save(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

type recordingPublisher struct {
	events []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, ev any) error {
	p.events = append(p.events, ev)
	return p.err
}

func counter(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// ticking returns a clock that advances a minute per call.
func ticking() func() time.Time {
	t := epoch
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func emptyStore(t *testing.T) (*Store, *memory.MemoryGateway) {
	t.Helper()
	gw := memory.NewMemoryGateway()
	if err := gw.Save(context.Background(), snapshot.KeyEntries, []byte(`[]`)); err != nil {
		t.Fatalf("prime gateway: %v", err)
	}
	s, err := OpenStore(context.Background(), gw, WithEntryIDGenerator(counter("entry")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s, gw
}

func sale(customer string, at time.Time, amount string) models.LedgerEntry {
	return models.LedgerEntry{
		CustomerName: customer,
		Date:         at,
		Kind:         models.KindSale,
		Amount:       d(amount),
		LineItems:    []models.LineItem{{ID: "li", Name: "goods", UnitPrice: d(amount), Quantity: d("1")}},
	}
}

func payment(customer string, at time.Time, amount string) models.LedgerEntry {
	return models.LedgerEntry{
		CustomerName: customer,
		Date:         at,
		Kind:         models.KindPayment,
		Amount:       d(amount),
	}
}
