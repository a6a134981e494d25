// Package session persists the authentication token between runs.
//
// The token lives under a single fixed key as its JSON encoding, exactly as
// the web client kept it in local storage: a missing key or the value null
// both mean "not logged in". Components receive a Store rather than
// touching storage directly, so tests can swap in MemoryStore.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// TokenKey is the storage key holding the JSON-encoded token.
	TokenKey = "anime-facts-jwt-token"
	// StartedKey holds the RFC 3339 time the token was stored.
	StartedKey = "anime-facts-session-started"
)

var ErrEmptyToken = errors.New("empty session token")

// Token is the opaque credential issued by the API.
type Token string

// Store is the persisted session.
type Store interface {
	// Get returns the stored token; ok is false when there is none.
	Get(ctx context.Context) (token Token, ok bool, err error)
	// Set replaces the stored token.
	Set(ctx context.Context, token Token) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

func encodeToken(t Token) ([]byte, error) {
	if t == "" {
		return nil, ErrEmptyToken
	}
	return json.Marshal(string(t))
}

// decodeToken accepts the stored JSON value. null (or nothing) is absence.
func decodeToken(raw []byte) (Token, bool, error) {
	if len(raw) == 0 {
		return "", false, nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, fmt.Errorf("decode %s: %w", TokenKey, err)
	}
	if s == nil || *s == "" {
		return "", false, nil
	}
	return Token(*s), true, nil
}
