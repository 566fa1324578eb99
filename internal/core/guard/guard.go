// Package guard gates content on a permission or role requirement and keeps
// its verdict current as the session changes.
//
// A Guard is a UX convenience. Claims are never signature-checked on this
// side, so a Guard must never be the only thing standing in front of a
// state-changing operation; the backend enforces every action it reveals.
package guard

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/consoleiam/admin-console/internal/core/authz"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// Mode says how Requirement.Permissions combine.
type Mode int

const (
	RequireAll Mode = iota
	RequireAny
)

// Requirement is a set of conditions that must all hold. Empty fields are
// ignored, so the zero Requirement always allows.
type Requirement struct {
	Permission  domain.PermissionName
	Permissions []domain.PermissionName
	Mode        Mode
	Role        domain.RoleName
	// Roles is satisfied by any one of its entries.
	Roles []domain.RoleName
}

// Empty reports whether r has no conditions.
func (r Requirement) Empty() bool {
	return r.Permission == "" && len(r.Permissions) == 0 && r.Role == "" && len(r.Roles) == 0
}

// Satisfied evaluates r against s.
func (r Requirement) Satisfied(s *domain.Session) bool {
	if r.Permission != "" && !authz.HasPermission(s, r.Permission) {
		return false
	}
	if len(r.Permissions) > 0 {
		if r.Mode == RequireAny {
			matched := false
			for _, p := range r.Permissions {
				if authz.HasPermission(s, p) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		} else {
			for _, p := range r.Permissions {
				if !authz.HasPermission(s, p) {
					return false
				}
			}
		}
	}
	if r.Role != "" && !authz.HasRole(s, r.Role) {
		return false
	}
	if len(r.Roles) > 0 && !authz.HasAnyRole(s, r.Roles...) {
		return false
	}
	return true
}

// Unknown returns the permission names in r that are not in the catalogue.
func (r Requirement) Unknown() []domain.PermissionName {
	var out []domain.PermissionName
	if r.Permission != "" && !domain.KnownPermission(r.Permission) {
		out = append(out, r.Permission)
	}
	for _, p := range r.Permissions {
		if !domain.KnownPermission(p) {
			out = append(out, p)
		}
	}
	return out
}

// Guard holds a live verdict for one Requirement.
type Guard struct {
	req     Requirement
	source  ports.SessionReader
	log     zerolog.Logger
	allowed atomic.Bool
	cancel  func()

	evalMu sync.Mutex // serialises re-reads of source

	mu        sync.Mutex
	listeners []func(bool)
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the guard logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Guard) { g.log = log }
}

// New subscribes to source and evaluates req against the current session, so
// the verdict follows every later change. Call Close to unsubscribe.
func New(source ports.SessionSource, req Requirement, opts ...Option) *Guard {
	g := &Guard{req: req, source: source, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}

	if unknown := req.Unknown(); len(unknown) > 0 {
		names := make([]string, len(unknown))
		for i, p := range unknown {
			names[i] = string(p)
		}
		g.log.Warn().Strs("permissions", names).Msg("guard requires unknown permission")
	}

	g.cancel = source.Subscribe(func(*domain.Session) { g.refresh() })
	g.refresh()
	return g
}

// Allowed reports the current verdict.
func (g *Guard) Allowed() bool { return g != nil && g.allowed.Load() }

// OnChange registers fn to be called with the new verdict whenever it flips.
// fn runs outside the guard's locks; under racing writers Allowed is the
// authoritative verdict.
func (g *Guard) OnChange(fn func(allowed bool)) {
	g.mu.Lock()
	g.listeners = append(g.listeners, fn)
	g.mu.Unlock()
}

// Close stops following the session. The last verdict is kept.
func (g *Guard) Close() {
	if g.cancel != nil {
		g.cancel()
	}
}

// refresh re-reads the source instead of trusting the notified snapshot.
// Notifications from racing writers can arrive out of order, but the last
// refresh to take evalMu always sees the latest session.
func (g *Guard) refresh() {
	g.evalMu.Lock()
	next := g.req.Satisfied(g.source.Snapshot())
	changed := g.allowed.Swap(next) != next
	g.evalMu.Unlock()
	if !changed {
		return
	}

	g.mu.Lock()
	fns := slices.Clone(g.listeners)
	g.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// Render returns content when g allows it, otherwise the first fallback or
// the zero value of T.
func Render[T any](g *Guard, content T, fallback ...T) T {
	if g.Allowed() {
		return content
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero T
	return zero
}
