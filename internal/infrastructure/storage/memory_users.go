package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// MemoryUsers is an in-process user directory for the development issuer.
type MemoryUsers struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID int64
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string]domain.User)}
}

func (m *MemoryUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	m.nextID++

	u := cloneUser(*user)
	u.ID = uuid.NewString()
	u.UserID = m.nextID
	m.users[u.Username] = u

	out := cloneUser(u)
	return &out, nil
}

func (m *MemoryUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func cloneUser(u domain.User) domain.User {
	u.Roles = slices.Clone(u.Roles)
	u.Permissions = slices.Clone(u.Permissions)
	u.TenantIDs = slices.Clone(u.TenantIDs)
	return u
}
