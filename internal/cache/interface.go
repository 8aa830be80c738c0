package cache

import (
	"context"
	"time"
)

// Cache is the key/value storage behind visitor sessions. Values are stored
// as JSON, so a record written by one implementation reads back the same way
// from the other.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const IdentityKeyPrefix = "papela_user"
