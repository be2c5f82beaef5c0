package auth

import (
	"context"
	"fmt"
	"time"
)

const revokedKeyPrefix = "token:revoked:"

// CounterStore is the expiring key store revocations are kept in
type CounterStore interface {
	Get(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// TokenRevocationList invalidates session tokens before they expire (logout).
// Entries live only as long as the token they revoke.
type TokenRevocationList struct {
	store CounterStore
}

// NewTokenRevocationList creates a revocation list on top of a counter store
func NewTokenRevocationList(store CounterStore) *TokenRevocationList {
	return &TokenRevocationList{store: store}
}

// Revoke marks a token id as revoked for ttl
func (l *TokenRevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if _, err := l.store.Increment(ctx, revokedKeyPrefix+jti, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token id has been revoked
func (l *TokenRevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.store.Get(ctx, revokedKeyPrefix+jti)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
