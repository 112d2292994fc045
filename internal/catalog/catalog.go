// Package catalog keeps the list of sellable goods and their default prices.
//
// The catalog only pre-fills new sale lines. Line items already written into
// ledger entries carry their own copy of name and price, so nothing here
// cascades into the ledger.
package catalog

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
	"github.com/AmanBeast/Sotre-Ledgger/internal/models/events"
	"github.com/AmanBeast/Sotre-Ledgger/internal/snapshot"
)

// Catalog is the inventory of goods. Items keep insertion order.
type Catalog struct {
	mu        sync.Mutex
	items     []models.CatalogItem
	gw        interfaces.Gateway
	publisher interfaces.EventPublisher
	logger    *slog.Logger
	newID     func() string
	now       func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) { c.logger = logger }
}

// WithPublisher publishes a CatalogChanged event after every mutation.
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(c *Catalog) { c.publisher = p }
}

// WithIDGenerator replaces uuid-based ids.
func WithIDGenerator(f func() string) Option {
	return func(c *Catalog) { c.newID = f }
}

func newCatalog(gw interfaces.Gateway, opts []Option) *Catalog {
	c := &Catalog{
		gw:     gw,
		logger: slog.Default(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open loads the catalog record from gw. When the record is absent the
// starter catalog is seeded and saved. A failure to save the seed is returned
// as a PersistenceError together with a usable Catalog.
func Open(ctx context.Context, gw interfaces.Gateway, opts ...Option) (*Catalog, error) {
	c := newCatalog(gw, opts)

	data, ok, err := gw.Load(ctx, snapshot.KeyCatalog)
	if err != nil {
		return nil, models.PersistenceError{Key: snapshot.KeyCatalog, Err: err}
	}
	if ok {
		items, err := snapshot.DecodeCatalog(data)
		if err != nil {
			return nil, models.PersistenceError{Key: snapshot.KeyCatalog, Err: err}
		}
		c.items = items
		c.logger.Info("catalog loaded", "items", len(items))
		return c, nil
	}

	for _, it := range StarterItems() {
		it.ID = c.newID()
		c.items = append(c.items, it)
	}
	c.logger.Info("catalog seeded", "items", len(c.items))

	c.mu.Lock()
	defer c.mu.Unlock()
	return c, c.save(ctx)
}

// StarterItems is the catalog a new shop starts with. IDs are left empty.
func StarterItems() []models.CatalogItem {
	return []models.CatalogItem{
		{Name: "Basmati Rice 1kg", Price: decimal.NewFromInt(120)},
		{Name: "Cooking Oil 1L", Price: decimal.NewFromInt(180)},
		{Name: "Sugar 1kg", Price: decimal.NewFromInt(45)},
		{Name: "Wheat Flour 5kg", Price: decimal.NewFromInt(250)},
		{Name: "Tea Leaves 250g", Price: decimal.NewFromInt(90)},
	}
}

// Add creates a new item with a fresh id.
func (c *Catalog) Add(ctx context.Context, name string, price decimal.Decimal) (models.CatalogItem, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return models.CatalogItem{}, err
	}
	if err := validatePrice(price); err != nil {
		return models.CatalogItem{}, err
	}

	c.mu.Lock()
	item := models.CatalogItem{ID: c.newID(), Name: name, Price: price}
	c.items = append(c.items, item)
	err := c.save(ctx)
	c.mu.Unlock()

	c.publish(ctx, "added", item)
	return item, err
}

// Update merges the non-nil fields of upd into the item with the given id.
func (c *Catalog) Update(ctx context.Context, id string, upd models.CatalogUpdate) (models.CatalogItem, error) {
	var name string
	if upd.Name != nil {
		name = strings.TrimSpace(*upd.Name)
		if err := validateName(name); err != nil {
			return models.CatalogItem{}, err
		}
	}
	if upd.Price != nil {
		if err := validatePrice(*upd.Price); err != nil {
			return models.CatalogItem{}, err
		}
	}

	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return models.CatalogItem{}, models.NotFoundError{Kind: "catalog item", ID: id}
	}
	if upd.Name != nil {
		c.items[i].Name = name
	}
	if upd.Price != nil {
		c.items[i].Price = *upd.Price
	}
	item := c.items[i]
	err := c.save(ctx)
	c.mu.Unlock()

	c.publish(ctx, "updated", item)
	return item, err
}

// Remove deletes the item. Entries that sold it are unaffected.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return models.NotFoundError{Kind: "catalog item", ID: id}
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	err := c.save(ctx)
	c.mu.Unlock()

	c.publish(ctx, "removed", models.CatalogItem{ID: removed.ID, Name: removed.Name})
	return err
}

// Get resolves a weak reference. It reports false for removed items.
func (c *Catalog) Get(id string) (models.CatalogItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return models.CatalogItem{}, false
}

// All returns a copy of the items in insertion order.
func (c *Catalog) All() []models.CatalogItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]models.CatalogItem, len(c.items))
	copy(copied, c.items)
	return copied
}

// Search yields items whose name contains query, ignoring case, in insertion
// order. An empty query yields everything. Each range over the sequence reads
// the catalog afresh.
func (c *Catalog) Search(query string) iter.Seq[models.CatalogItem] {
	q := strings.ToLower(query)
	return func(yield func(models.CatalogItem) bool) {
		for _, it := range c.All() {
			if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

func (c *Catalog) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// save writes the whole catalog. Callers hold c.mu.
func (c *Catalog) save(ctx context.Context) error {
	data, err := snapshot.EncodeCatalog(c.items)
	if err == nil {
		err = c.gw.Save(ctx, snapshot.KeyCatalog, data)
	}
	if err != nil {
		c.logger.Error("catalog snapshot not saved", "key", snapshot.KeyCatalog, "error", err)
		return models.PersistenceError{Key: snapshot.KeyCatalog, Err: err}
	}
	return nil
}

func (c *Catalog) publish(ctx context.Context, action string, item models.CatalogItem) {
	if c.publisher == nil {
		return
	}
	ev := events.CatalogChanged{
		Type:       events.TypeCatalogChanged,
		Action:     action,
		ItemID:     item.ID,
		Name:       item.Name,
		OccurredAt: c.now().UTC(),
	}
	if action != "removed" {
		price := item.Price
		ev.Price = &price
	}
	if err := c.publisher.Publish(ctx, item.ID, ev); err != nil {
		c.logger.Warn("catalog event not published", "item_id", item.ID, "action", action, "error", err)
	}
}

func validateName(name string) error {
	if name == "" {
		return models.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return models.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	return nil
}
