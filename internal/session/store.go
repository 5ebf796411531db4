// Package session provides the TTL-bound key-value store backing per-session
// shopping carts. Carts are never persisted to the relational database.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no value exists for a session key.
var ErrNotFound = errors.New("session: not found")

// Store holds JSON-encoded session values keyed by an opaque token. Values
// expire after the store's configured TTL.
type Store interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}
