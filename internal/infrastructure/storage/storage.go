// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed key-value store holding JSON-encoded values.
// It is the persistence boundary for cart contents and the preferred
// locale; callers marshal/unmarshal their own payloads.
type Store interface {
	// Get retrieves the value for key. Returns ErrNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given expiration. A zero
	// expiration means no expiry.
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Delete removes one or more keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
