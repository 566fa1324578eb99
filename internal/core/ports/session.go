package ports

import (
	"context"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// SessionReader exposes the current session snapshot.
type SessionReader interface {
	Snapshot() *domain.Session
}

// SessionSource is a SessionReader that also announces every change.
type SessionSource interface {
	SessionReader
	Subscribe(fn func(*domain.Session)) (cancel func())
}

// SessionStore is the full session store surface used by the API layer.
type SessionStore interface {
	SessionSource
	SetToken(ctx context.Context, credential string) error
	Logout(ctx context.Context)
	SetProfile(p *domain.Profile) error
	SetTenant(t *domain.Tenant)
}
