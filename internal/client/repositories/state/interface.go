package state

import (
	"context"
)

// Repository is a key/value store for client-side state that must survive
// restarts. The persisted session record lives here, keyed "auth-storage".
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
