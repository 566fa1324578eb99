// Package authz answers "can the current session do X". Every function is
// total and returns false for a nil or unauthenticated session.
package authz

import (
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// HasPermission reports exact membership of name in the session permission set.
func HasPermission(s *domain.Session, name domain.PermissionName) bool {
	if !s.Authenticated() {
		return false
	}
	return s.Permissions().Has(name)
}

// HasRole reports whether the profile carries a role named exactly name.
func HasRole(s *domain.Session, name domain.RoleName) bool {
	if !s.Authenticated() {
		return false
	}
	p := s.Profile()
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether any of names is held.
func HasAnyRole(s *domain.Session, names ...domain.RoleName) bool {
	for _, n := range names {
		if HasRole(s, n) {
			return true
		}
	}
	return false
}

// CanAccessResource matches against the decomposed permission list rather
// than the flat set, for callers that hold resource and action separately.
func CanAccessResource(s *domain.Session, resource, action string) bool {
	if !s.Authenticated() {
		return false
	}
	p := s.Profile()
	if p == nil {
		return false
	}
	for _, perm := range p.Permissions {
		if perm.Resource == resource && perm.Action == action {
			return true
		}
	}
	return false
}

// Resolver evaluates the same checks against whatever snapshot reader holds
// at call time.
type Resolver struct {
	reader ports.SessionReader
}

// NewResolver binds a Resolver to reader.
func NewResolver(reader ports.SessionReader) *Resolver {
	return &Resolver{reader: reader}
}

func (r *Resolver) session() *domain.Session {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Snapshot()
}

func (r *Resolver) HasPermission(name domain.PermissionName) bool {
	return HasPermission(r.session(), name)
}

func (r *Resolver) HasRole(name domain.RoleName) bool {
	return HasRole(r.session(), name)
}

func (r *Resolver) HasAnyRole(names ...domain.RoleName) bool {
	return HasAnyRole(r.session(), names...)
}

func (r *Resolver) CanAccessResource(resource, action string) bool {
	return CanAccessResource(r.session(), resource, action)
}
