// Package session holds the console's single source of authentication truth.
//
// A Store projects at most one credential into an immutable domain.Session
// snapshot. Reads are lock-free; writes replace the snapshot wholesale so the
// profile and permission set always come from the same decode. Build one Store
// in the composition root and inject it; there is no package-level instance.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/consoleiam/admin-console/internal/core/codec"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// Transition reasons reported to the TransitionFunc hook.
const (
	ReasonBoot       = "boot"
	ReasonLogin      = "login"
	ReasonLogout     = "logout"
	ReasonExpired    = "expired"
	ReasonMalformed  = "malformed"
	ReasonIncomplete = "incomplete"
	ReasonDegraded   = "degraded"
	ReasonProfile    = "profile"
	ReasonTenant     = "tenant"
	ReasonReset      = "reset"
)

// TransitionFunc observes every state change: authenticated is the new state
// and reason one of the Reason constants.
type TransitionFunc func(authenticated bool, reason string)

// Store is the session store. The zero value is not usable; call NewStore.
type Store struct {
	codec         *codec.Codec
	slot          ports.CredentialStore
	log           zerolog.Logger
	allowDegraded bool
	onTransition  TransitionFunc

	mu    sync.Mutex // serialises writers
	state atomic.Pointer[domain.Session]

	subsMu sync.Mutex
	subs   map[uint64]func(*domain.Session)
	nextID uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithDegradedClaims accepts credentials whose claims decode but miss
// required fields. Such sessions are authenticated with no profile and no
// permissions. Off by default: incomplete claims are rejected.
func WithDegradedClaims(allow bool) Option {
	return func(s *Store) { s.allowDegraded = allow }
}

// WithTransitionHook registers fn to observe state changes.
func WithTransitionHook(fn TransitionFunc) Option {
	return func(s *Store) { s.onTransition = fn }
}

// NewStore builds an unauthenticated store. It performs no I/O; call Init to
// restore a persisted credential.
func NewStore(c *codec.Codec, slot ports.CredentialStore, opts ...Option) *Store {
	s := &Store{
		codec: c,
		slot:  slot,
		log:   zerolog.Nop(),
		subs:  make(map[uint64]func(*domain.Session)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(domain.NewSession("", nil, nil))
	return s
}

// Init restores the session from the credential slot. An expired or
// undecodable persisted credential is erased. A slot read failure leaves the
// store unauthenticated and is returned.
func (s *Store) Init(ctx context.Context) error {
	return s.update(func(cur *domain.Session) (*domain.Session, string, error) {
		credential, err := s.slot.Load(ctx)
		if err != nil && !errors.Is(err, domain.ErrNoCredential) {
			return domain.NewSession("", nil, cur.Tenant()), ReasonBoot, fmt.Errorf("session init: load credential: %w", err)
		}
		if credential == "" {
			s.log.Debug().Msg("no persisted credential")
			return domain.NewSession("", nil, cur.Tenant()), ReasonBoot, nil
		}

		next, reason, rejectErr := s.derive(cur, credential)
		if rejectErr != nil {
			s.log.Info().Err(rejectErr).Msg("discarding persisted credential")
			s.erase(ctx)
			return next, reason, nil
		}
		if reason == ReasonLogin {
			reason = ReasonBoot
		}
		return next, reason, nil
	})
}

// Reset drops in-memory state without touching the credential slot.
func (s *Store) Reset() {
	_ = s.update(func(*domain.Session) (*domain.Session, string, error) {
		return domain.NewSession("", nil, nil), ReasonReset, nil
	})
}

// Snapshot returns the current session. It never returns nil.
func (s *Store) Snapshot() *domain.Session { return s.state.Load() }

// Credential returns the active credential or "".
func (s *Store) Credential() string { return s.Snapshot().Credential() }

// IsAuthenticated reports whether a credential is active.
func (s *Store) IsAuthenticated() bool { return s.Snapshot().Authenticated() }

// Profile returns a copy of the active profile, or nil.
func (s *Store) Profile() *domain.Profile { return s.Snapshot().Profile().Clone() }

// Permissions returns the flat permission set of the active session.
func (s *Store) Permissions() domain.PermissionSet { return s.Snapshot().Permissions() }

// Tenant returns the selected tenant, or nil.
func (s *Store) Tenant() *domain.Tenant {
	t := s.Snapshot().Tenant()
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// SetToken replaces the session with the projection of credential. An empty
// credential logs out. A rejected credential (malformed, expired, or with
// incomplete claims) leaves the store unauthenticated with the slot erased;
// the returned error only explains the rejection. Calling SetToken twice with
// the same credential yields the same state.
func (s *Store) SetToken(ctx context.Context, credential string) error {
	return s.update(func(cur *domain.Session) (*domain.Session, string, error) {
		if credential == "" {
			s.erase(ctx)
			return domain.NewSession("", nil, cur.Tenant()), ReasonLogout, nil
		}

		next, reason, rejectErr := s.derive(cur, credential)
		if rejectErr != nil {
			s.log.Warn().Err(rejectErr).Str("reason", reason).Msg("credential rejected")
			s.erase(ctx)
			return next, reason, rejectErr
		}

		if err := s.slot.Save(ctx, credential); err != nil {
			s.log.Error().Err(err).Msg("persist credential failed")
		}
		return next, reason, nil
	})
}

// Logout clears the session and the credential slot. It is a fixed point.
func (s *Store) Logout(ctx context.Context) {
	_ = s.SetToken(ctx, "")
}

// SetProfile replaces the profile of the authenticated session, for example
// after a fresh profile fetch, and recomputes permissions from it.
func (s *Store) SetProfile(p *domain.Profile) error {
	return s.update(func(cur *domain.Session) (*domain.Session, string, error) {
		if !cur.Authenticated() {
			return nil, "", domain.ErrUnauthenticated
		}
		return cur.WithProfile(p.Clone()), ReasonProfile, nil
	})
}

// SetTenant sets the active tenant; nil clears it. The tenant slot is
// independent of authentication.
func (s *Store) SetTenant(t *domain.Tenant) {
	var cp *domain.Tenant
	if t != nil {
		v := *t
		cp = &v
	}
	_ = s.update(func(cur *domain.Session) (*domain.Session, string, error) {
		return cur.WithTenant(cp), ReasonTenant, nil
	})
}

// Subscribe registers fn to be called with the new snapshot after every
// change. fn runs synchronously on the writer's goroutine, outside the write
// lock. The returned func unregisters it.
func (s *Store) Subscribe(fn func(*domain.Session)) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

// derive projects credential into a session, keeping the tenant of cur. On
// rejection the returned session is unauthenticated and err says why.
func (s *Store) derive(cur *domain.Session, credential string) (*domain.Session, string, error) {
	tenant := cur.Tenant()

	claims, err := s.codec.Decode(credential)
	if err != nil {
		return domain.NewSession("", nil, tenant), ReasonMalformed, err
	}
	if s.codec.Expired(claims) {
		return domain.NewSession("", nil, tenant), ReasonExpired, domain.ErrExpiredCredential
	}
	if err := claims.Validate(); err != nil {
		if !s.allowDegraded {
			return domain.NewSession("", nil, tenant), ReasonIncomplete, err
		}
		s.log.Warn().Err(err).Msg("accepting credential with incomplete claims")
		return domain.NewSession(credential, nil, tenant), ReasonDegraded, nil
	}
	return domain.NewSession(credential, domain.NewProfile(claims), tenant), ReasonLogin, nil
}

func (s *Store) erase(ctx context.Context) {
	if err := s.slot.Erase(ctx); err != nil {
		s.log.Error().Err(err).Msg("erase credential failed")
	}
}

// update runs fn under the write lock and publishes the session it returns.
// A nil session leaves the state untouched. Observers are notified after the
// lock is released.
func (s *Store) update(fn func(cur *domain.Session) (*domain.Session, string, error)) error {
	s.mu.Lock()
	next, reason, err := fn(s.Snapshot())
	if next != nil {
		s.state.Store(next)
	}
	s.mu.Unlock()

	if next != nil {
		s.notify(next, reason)
	}
	return err
}

func (s *Store) notify(next *domain.Session, reason string) {
	s.log.Debug().
		Bool("authenticated", next.Authenticated()).
		Int("permissions", next.Permissions().Len()).
		Str("reason", reason).
		Msg("session updated")

	if s.onTransition != nil {
		s.onTransition(next.Authenticated(), reason)
	}

	s.subsMu.Lock()
	fns := make([]func(*domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
