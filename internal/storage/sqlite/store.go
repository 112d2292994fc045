// Package sqlite keeps ledger snapshots in a single SQLite file, which is
// the natural durable store for one shop on one machine.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
)

// compile-time interface check
var _ interfaces.Gateway = (*Gateway)(nil)

// Gateway implements interfaces.Gateway on a SQLite database.
type Gateway struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path and migrates it.
func Open(ctx context.Context, path string) (*Gateway, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ledger/sqlite: open %s: %w", path, err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	g := &Gateway{db: db}
	if err := g.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

// Migrate creates the snapshot table.
func (g *Gateway) Migrate(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);`)
	if err != nil {
		return fmt.Errorf("ledger/sqlite: migration failed: %w", err)
	}
	return nil
}

func (g *Gateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM ledger_snapshots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ledger/sqlite: load %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (g *Gateway) Save(ctx context.Context, key string, value []byte) error {
	_, err := g.db.ExecContext(ctx, `
INSERT INTO ledger_snapshots (key, value, updated_at) VALUES (?, ?, datetime('now'))
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("ledger/sqlite: save %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (g *Gateway) Close() error {
	return g.db.Close()
}
