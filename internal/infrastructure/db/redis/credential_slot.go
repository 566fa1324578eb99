package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// DefaultKey is the well-known key holding the raw credential.
const DefaultKey = "console:auth_token"

// ExpiryFunc reports when a credential stops being valid.
type ExpiryFunc func(credential string) (time.Time, bool)

// CredentialSlot keeps the credential under a single redis key.
type CredentialSlot struct {
	client *redis.Client
	key    string
	expiry ExpiryFunc
	now    func() time.Time
}

// SlotOption configures a CredentialSlot.
type SlotOption func(*CredentialSlot)

// WithKey overrides DefaultKey.
func WithKey(key string) SlotOption {
	return func(s *CredentialSlot) {
		if key != "" {
			s.key = key
		}
	}
}

// WithExpiry makes Save set a TTL so redis drops the value when the
// credential expires.
func WithExpiry(fn ExpiryFunc) SlotOption {
	return func(s *CredentialSlot) { s.expiry = fn }
}

// NewCredentialSlot wraps client.
func NewCredentialSlot(client *redis.Client, opts ...SlotOption) *CredentialSlot {
	s := &CredentialSlot{client: client, key: DefaultKey, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored credential or domain.ErrNoCredential.
func (s *CredentialSlot) Load(ctx context.Context) (string, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && v == "") {
		return "", domain.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return v, nil
}

// Save overwrites the slot.
func (s *CredentialSlot) Save(ctx context.Context, credential string) error {
	var ttl time.Duration
	if s.expiry != nil {
		if at, ok := s.expiry(credential); ok {
			ttl = at.Sub(s.now())
			if ttl <= 0 {
				return s.Erase(ctx)
			}
		}
	}
	if err := s.client.Set(ctx, s.key, credential, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

// Erase deletes the key. A missing key is not an error.
func (s *CredentialSlot) Erase(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key, err)
	}
	return nil
}

// Ping checks the connection.
func (s *CredentialSlot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
