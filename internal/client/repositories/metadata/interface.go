package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. It backs the persisted session
// the way browser local storage backs a web client.
type Repository interface {
	// Get returns the value for key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set inserts or overwrites key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
