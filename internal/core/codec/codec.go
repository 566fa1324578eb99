// Package codec decodes bearer credentials into claims without verifying
// their signature. Verification is the identity backend's job; the console
// only needs the claims to shape its UI.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

const defaultCacheSize = 16

// Codec turns credential strings into claims and answers expiry questions.
// All methods are safe for concurrent use.
type Codec struct {
	parser *jwt.Parser
	now    func() time.Time
	cache  *lru.Cache[string, *domain.Claims]
}

// Option configures a Codec.
type Option func(*codecOptions)

type codecOptions struct {
	now       func() time.Time
	cacheSize int
}

// WithClock overrides the wall clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *codecOptions) { o.now = now }
}

// WithCacheSize sets how many decoded credentials are kept. Zero or less
// disables the cache.
func WithCacheSize(n int) Option {
	return func(o *codecOptions) { o.cacheSize = n }
}

// New builds a Codec.
func New(opts ...Option) *Codec {
	o := codecOptions{now: time.Now, cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Codec{
		parser: jwt.NewParser(jwt.WithPaddingAllowed()),
		now:    o.now,
	}
	if o.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		c.cache, _ = lru.New[string, *domain.Claims](o.cacheSize)
	}
	return c
}

// Decode reads the claims segment of credential. Any structural problem is
// reported as domain.ErrMalformedCredential. The returned claims are a copy
// the caller may keep.
func (c *Codec) Decode(credential string) (*domain.Claims, error) {
	if c.cache != nil {
		if claims, ok := c.cache.Get(credential); ok {
			return claims.Clone(), nil
		}
	}

	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", domain.ErrMalformedCredential, len(parts))
	}

	payload, err := c.parser.DecodeSegment(urlAlphabet(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: claims segment: %v", domain.ErrMalformedCredential, err)
	}

	if bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return nil, fmt.Errorf("%w: empty claims payload", domain.ErrMalformedCredential)
	}

	var claims domain.Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: claims payload: %v", domain.ErrMalformedCredential, err)
	}

	if c.cache != nil {
		c.cache.Add(credential, claims.Clone())
	}
	return &claims, nil
}

// IsExpired reports whether credential must be treated as expired. Anything
// that does not decode, or carries no expiry, is expired. There is no clock
// skew leeway: a credential expires at the instant exp is reached.
func (c *Codec) IsExpired(credential string) bool {
	claims, err := c.Decode(credential)
	if err != nil {
		return true
	}
	return c.Expired(claims)
}

// Expired applies the expiry rule to already decoded claims.
func (c *Codec) Expired(claims *domain.Claims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return true
	}
	return !claims.ExpiresAt.After(c.now())
}

// ExpiresAt returns the absolute expiry of credential. ok is false when the
// credential does not decode or has no exp claim.
func (c *Codec) ExpiresAt(credential string) (t time.Time, ok bool) {
	claims, err := c.Decode(credential)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// urlAlphabet maps the standard base64 alphabet onto the URL-safe one so
// segments encoded either way decode.
func urlAlphabet(seg string) string {
	return strings.NewReplacer("+", "-", "/", "_").Replace(seg)
}
