package ports

import "context"

// SessionStorage is the durable key-value store holding the bearer token and
// the identity mirror. Implementations must return domain.ErrKeyNotFound for
// absent keys and treat Delete of an absent key as a no-op.
type SessionStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
