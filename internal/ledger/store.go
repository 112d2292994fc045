package ledger

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
	"github.com/AmanBeast/Sotre-Ledgger/internal/snapshot"
)

// Store is the canonical collection of ledger entries. Every mutation is
// followed by a full snapshot save through the gateway.
type Store struct {
	mu      sync.Mutex
	entries []models.LedgerEntry
	gw      interfaces.Gateway
	logger  *slog.Logger
	newID   func() string
	seed    []models.LedgerEntry
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithSeed sets the entries written when the gateway has no entries record yet.
func WithSeed(entries []models.LedgerEntry) StoreOption {
	return func(s *Store) { s.seed = entries }
}

// WithEntryIDGenerator replaces uuid-based entry ids.
func WithEntryIDGenerator(f func() string) StoreOption {
	return func(s *Store) { s.newID = f }
}

// OpenStore loads the entries record from gw, seeding it when absent.
// A failure to save the seed comes back as a PersistenceError along with a
// usable Store.
func OpenStore(ctx context.Context, gw interfaces.Gateway, opts ...StoreOption) (*Store, error) {
	s := &Store{
		gw:     gw,
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := gw.Load(ctx, snapshot.KeyEntries)
	if err != nil {
		return nil, models.PersistenceError{Key: snapshot.KeyEntries, Err: err}
	}
	if ok {
		entries, err := snapshot.DecodeEntries(data)
		if err != nil {
			return nil, models.PersistenceError{Key: snapshot.KeyEntries, Err: err}
		}
		s.entries = entries
		s.logger.Info("entries loaded", "entries", len(entries))
		return s, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.seed {
		if e.ID == "" {
			e.ID = s.newID()
		}
		s.entries = append(s.entries, e.Clone())
	}
	s.seed = nil
	s.logger.Info("entries seeded", "entries", len(s.entries))
	return s, s.save(ctx)
}

// Append checks the entry's shape, assigns an id when missing, stores a copy
// and returns it.
func (s *Store) Append(ctx context.Context, entry models.LedgerEntry) (models.LedgerEntry, error) {
	if err := checkShape(entry); err != nil {
		return models.LedgerEntry{}, err
	}
	entry = entry.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = s.newID()
	} else if s.indexOf(entry.ID) >= 0 {
		return models.LedgerEntry{}, models.ValidationError{Field: "id", Message: "already recorded"}
	}
	s.entries = append(s.entries, entry)
	return entry.Clone(), s.save(ctx)
}

// Remove deletes the entry with the given id. Unknown ids are a no-op and
// report false.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return true, s.save(ctx)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (models.LedgerEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return models.LedgerEntry{}, false
}

// All returns a copy of every entry.
func (s *Store) All() []models.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]models.LedgerEntry, len(s.entries))
	for i, e := range s.entries {
		copied[i] = e.Clone()
	}
	return copied
}

// EntriesFor yields the entries whose customer name equals customerName
// exactly. No order is promised.
func (s *Store) EntriesFor(customerName string) iter.Seq[models.LedgerEntry] {
	return func(yield func(models.LedgerEntry) bool) {
		for _, e := range s.All() {
			if e.CustomerName != customerName {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// save writes every entry. Callers hold s.mu.
func (s *Store) save(ctx context.Context) error {
	data, err := snapshot.EncodeEntries(s.entries)
	if err == nil {
		err = s.gw.Save(ctx, snapshot.KeyEntries, data)
	}
	if err != nil {
		s.logger.Error("entries snapshot not saved", "key", snapshot.KeyEntries, "error", err)
		return models.PersistenceError{Key: snapshot.KeyEntries, Err: err}
	}
	return nil
}

func checkShape(e models.LedgerEntry) error {
	if strings.TrimSpace(e.CustomerName) == "" {
		return models.ValidationError{Field: "customerName", Message: "must not be empty"}
	}
	if e.Amount.IsNegative() {
		return models.ValidationError{Field: "amount", Message: "must not be negative"}
	}
	switch e.Kind {
	case models.KindSale:
		if len(e.LineItems) == 0 {
			return models.ValidationError{Field: "lineItems", Message: "a sale needs at least one line item"}
		}
	case models.KindPayment:
		if len(e.LineItems) != 0 {
			return models.ValidationError{Field: "lineItems", Message: "a payment carries no line items"}
		}
	default:
		return models.ValidationError{Field: "kind", Message: "must be SALE or PAYMENT"}
	}
	return nil
}
