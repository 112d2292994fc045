package ledger

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
	"github.com/AmanBeast/Sotre-Ledgger/internal/snapshot"
	"github.com/AmanBeast/Sotre-Ledgger/internal/storage/memory"
)

func TestOpenStoreSeedsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	gw := memory.NewMemoryGateway()
	seed := []models.LedgerEntry{sale("Ramesh Kumar", epoch, "240"), payment("Ramesh Kumar", epoch, "100")}

	s, err := OpenStore(ctx, gw, WithSeed(seed), WithEntryIDGenerator(counter("e")))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := len(s.All()); got != 2 {
		t.Fatalf("got %d seeded entries, want 2", got)
	}

	again, err := OpenStore(ctx, gw, WithSeed([]models.LedgerEntry{sale("Other", epoch, "1")}))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	all := again.All()
	if len(all) != 2 || all[0].ID != "e-1" || all[1].ID != "e-2" {
		t.Errorf("seed must not be applied over an existing record: %+v", all)
	}
}

func TestAppend(t *testing.T) {
	blank := sale("  ", epoch, "1")
	negative := payment("Asha", epoch, "-5")
	saleNoLines := sale("Asha", epoch, "1")
	saleNoLines.LineItems = nil
	paymentWithLines := payment("Asha", epoch, "1")
	paymentWithLines.LineItems = sale("Asha", epoch, "1").LineItems
	badKind := payment("Asha", epoch, "1")
	badKind.Kind = "REFUND"

	tests := []struct {
		name  string
		entry models.LedgerEntry
		field string
	}{
		{"blank customer", blank, "customerName"},
		{"negative amount", negative, "amount"},
		{"sale without lines", saleNoLines, "lineItems"},
		{"payment with lines", paymentWithLines, "lineItems"},
		{"unknown kind", badKind, "kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, gw := emptyStore(t)
			_, err := s.Append(context.Background(), tt.entry)
			var ve models.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("got %v, want ValidationError on %s", err, tt.field)
			}
			if len(s.All()) != 0 || gw.Saves(snapshot.KeyEntries) != 1 {
				t.Error("rejected append must not mutate or save")
			}
		})
	}

	t.Run("assigns id and saves", func(t *testing.T) {
		s, gw := emptyStore(t)
		stored, err := s.Append(context.Background(), sale("Asha", epoch, "240"))
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if stored.ID != "entry-1" {
			t.Errorf("id: got %q, want entry-1", stored.ID)
		}
		if gw.Saves(snapshot.KeyEntries) != 2 {
			t.Errorf("append should save once, got %d saves", gw.Saves(snapshot.KeyEntries)-1)
		}
	})

	t.Run("keeps given id, rejects duplicates", func(t *testing.T) {
		s, _ := emptyStore(t)
		e := sale("Asha", epoch, "1")
		e.ID = "fixed"
		if stored, err := s.Append(context.Background(), e); err != nil || stored.ID != "fixed" {
			t.Fatalf("got (%q, %v)", stored.ID, err)
		}
		if _, err := s.Append(context.Background(), e); !models.IsValidation(err) {
			t.Errorf("duplicate id: got %v, want ValidationError", err)
		}
	})
}

func TestStoredEntriesAreIsolated(t *testing.T) {
	s, _ := emptyStore(t)
	e := sale("Asha", epoch, "120")
	stored, err := s.Append(context.Background(), e)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e.LineItems[0].Name = "mutated by caller"
	stored.LineItems[0].Name = "mutated via result"
	all := s.All()
	all[0].LineItems[0].Name = "mutated via All"

	got, _ := s.Get(stored.ID)
	if got.LineItems[0].Name != "goods" {
		t.Errorf("stored line item changed to %q", got.LineItems[0].Name)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s, gw := emptyStore(t)
	a, _ := s.Append(ctx, sale("Asha", epoch, "1"))
	b, _ := s.Append(ctx, sale("Bina", epoch, "2"))
	saves := gw.Saves(snapshot.KeyEntries)

	removed, err := s.Remove(ctx, a.ID)
	if err != nil || !removed {
		t.Fatalf("remove: removed=%v err=%v", removed, err)
	}
	if gw.Saves(snapshot.KeyEntries) != saves+1 {
		t.Error("remove should save")
	}

	removed, err = s.Remove(ctx, a.ID)
	if err != nil || removed {
		t.Errorf("second remove: removed=%v err=%v, want no-op", removed, err)
	}
	if gw.Saves(snapshot.KeyEntries) != saves+1 {
		t.Error("no-op remove should not save")
	}

	if all := s.All(); len(all) != 1 || all[0].ID != b.ID {
		t.Errorf("got %+v, want only %s", all, b.ID)
	}
}

func TestEntriesForMatchesExactName(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)
	for _, name := range []string{"Ramesh", "ramesh", "Ramesh", "Rameshwar"} {
		if _, err := s.Append(ctx, sale(name, epoch, "1")); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got := slices.Collect(s.EntriesFor("Ramesh"))
	if len(got) != 2 {
		t.Errorf("got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.CustomerName != "Ramesh" {
			t.Errorf("unexpected customer %q", e.CustomerName)
		}
	}
}

func TestEntriesSurviveReload(t *testing.T) {
	ctx := context.Background()
	s, gw := emptyStore(t)
	_, _ = s.Append(ctx, sale("Asha", epoch, "240"))
	_, _ = s.Append(ctx, payment("Asha", epoch.Add(time.Hour), "100"))

	reloaded, err := OpenStore(ctx, gw)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	before, after := s.All(), reloaded.All()
	if len(before) != len(after) {
		t.Fatalf("got %d entries, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i].ID != after[i].ID || !before[i].Amount.Equal(after[i].Amount) || !before[i].Date.Equal(after[i].Date) {
			t.Errorf("entry %d: got %+v, want %+v", i, after[i], before[i])
		}
	}
}

func TestAppendPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewMemoryGateway()
	_ = mem.Save(ctx, snapshot.KeyEntries, []byte(`[]`))
	s, err := OpenStore(ctx, brokenGateway{mem})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	stored, err := s.Append(ctx, sale("Asha", epoch, "10"))
	if !models.IsPersistence(err) {
		t.Fatalf("got %v, want PersistenceError", err)
	}
	if _, ok := s.Get(stored.ID); !ok {
		t.Error("entry should stay in memory after a failed save")
	}
}
