// Package kvstore is a small string-keyed blob store with file, SQLite,
// Redis and in-memory backends.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kvstore: key not found")

// Store persists opaque values under string keys.
type Store interface {
	// Get returns ErrNotFound when key has never been set or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
