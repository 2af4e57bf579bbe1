package port

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

// KeyValueStore is a durable string store with opaque keys. It is the only
// persistence surface the core depends on.
type KeyValueStore interface {
	// Load returns the value stored under key, or ErrNotFound if absent.
	Load(ctx context.Context, key string) (string, error)

	// Save writes value under key, overwriting any previous value.
	Save(ctx context.Context, key, value string) error

	// Remove deletes the key entirely. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
