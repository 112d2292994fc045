package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // registers the "postgres" driver

	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
)

type PostgresGateway struct {
	db *sql.DB
}

func NewPostgresGateway(db *sql.DB) *PostgresGateway {
	return &PostgresGateway{
		db: db,
	}
}

// Open connects to dsn and makes sure the snapshot table exists.
func Open(ctx context.Context, dsn string) (*PostgresGateway, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	p := NewPostgresGateway(db)
	if err := p.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresGateway) Migrate(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS ledger_snapshots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate ledger_snapshots: %w", err)
	}
	return nil
}

func (p *PostgresGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM ledger_snapshots WHERE key = $1`

	var value string
	err := p.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return []byte(value), true, nil
}

func (p *PostgresGateway) Save(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO ledger_snapshots (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := p.db.ExecContext(ctx, query, key, string(value))
	return err
}

func (p *PostgresGateway) Close() error {
	return p.db.Close()
}

var _ interfaces.Gateway = (*PostgresGateway)(nil)
