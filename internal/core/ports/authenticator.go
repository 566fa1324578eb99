package ports

import (
	"context"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// Authenticator performs the login round trip and returns a credential.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// UserRepository defines persistence for the development user directory.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
