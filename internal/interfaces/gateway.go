package interfaces

import "context"

// Gateway is durable key/value storage for whole-collection snapshots.
// A Save must be visible to the next Load, including after a restart.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
