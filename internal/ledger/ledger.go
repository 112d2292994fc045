package ledger

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
	"github.com/AmanBeast/Sotre-Ledgger/internal/models/events"
)

// Ledger ties the composer, the entry store and the aggregator together for
// the boundaries that record, delete and display entries.
type Ledger struct {
	store     *Store
	composer  *Composer
	publisher interfaces.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithComposer replaces the default composer.
func WithComposer(c *Composer) Option {
	return func(l *Ledger) { l.composer = c }
}

// WithPublisher publishes EntryRecorded and EntryRemoved events.
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

func NewLedger(store *Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		composer: NewComposer(),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Overview is the customer list as displayed: balances largest first and the
// net amount owed to the shop.
type Overview struct {
	Customers        []models.CustomerSummary
	TotalOutstanding decimal.Decimal
}

// History is one customer's entries, newest first, with their balance.
type History struct {
	CustomerName string
	Balance      decimal.Decimal
	Entries      []models.LedgerEntry
}

// Record composes an entry from the draft and appends it. On a
// PersistenceError the entry is still recorded and returned.
func (l *Ledger) Record(ctx context.Context, kind models.EntryKind, customerName string, d Draft) (models.LedgerEntry, error) {
	entry, err := l.composer.Compose(kind, customerName, d)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	stored, err := l.store.Append(ctx, entry)
	if err != nil && !models.IsPersistence(err) {
		return models.LedgerEntry{}, err
	}

	l.logger.Info("entry recorded",
		"entry_id", stored.ID,
		"customer", stored.CustomerName,
		"kind", stored.Kind,
		"amount", stored.Amount.String(),
	)
	l.publish(ctx, stored.ID, events.EntryRecorded{
		Type:         events.TypeEntryRecorded,
		EntryID:      stored.ID,
		CustomerName: stored.CustomerName,
		Kind:         string(stored.Kind),
		Amount:       stored.Amount,
		OccurredAt:   l.now().UTC(),
	})
	return stored, err
}

// Delete removes an entry unconditionally; confirming intent is the
// caller's job. Unknown ids are ignored.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	removed, err := l.store.Remove(ctx, id)
	if !removed {
		return err
	}

	l.logger.Info("entry removed", "entry_id", id)
	l.publish(ctx, id, events.EntryRemoved{
		Type:       events.TypeEntryRemoved,
		EntryID:    id,
		OccurredAt: l.now().UTC(),
	})
	return err
}

// Overview summarizes all entries and keeps the customers matching query.
// The total covers every customer regardless of the filter.
func (l *Ledger) Overview(query string) Overview {
	summaries := Summarize(l.store.All())
	return Overview{
		Customers:        FilterByName(summaries, query),
		TotalOutstanding: TotalOutstanding(summaries),
	}
}

// History returns a customer's entries, newest first.
func (l *Ledger) History(customerName string) History {
	entries := slices.Collect(l.store.EntriesFor(customerName))
	newestFirst(entries)
	return History{
		CustomerName: customerName,
		Balance:      Balance(entries),
		Entries:      entries,
	}
}

func (l *Ledger) GetBalance(customerName string) decimal.Decimal {
	return Balance(slices.Collect(l.store.EntriesFor(customerName)))
}

// SuggestCustomers lists known customer names containing query.
func (l *Ledger) SuggestCustomers(query string) []string {
	return SuggestCustomers(Summarize(l.store.All()), query)
}

func (l *Ledger) GetLedgerEntries() []models.LedgerEntry {
	return l.store.All()
}

func (l *Ledger) publish(ctx context.Context, key string, event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, key, event); err != nil {
		l.logger.Warn("ledger event not published", "entry_id", key, "error", err)
	}
}
