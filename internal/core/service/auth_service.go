package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

const devIssuer = "admin-console-dev"

// RegisterInput describes a directory account.
type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	Roles       []string
	Permissions []string
	TenantIDs   []string
}

// AuthService is the development credential issuer. It signs HS256
// credentials in the same claims schema the identity backend produces, so the
// console can run without one.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL, now: time.Now}
}

// WithClock replaces the issuing clock.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Register stores a new account. Roles and permissions must come from the
// known vocabularies.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidUser)
	}
	for _, p := range in.Permissions {
		if !domain.KnownPermission(domain.PermissionName(p)) {
			return nil, fmt.Errorf("%w: unknown permission %q", domain.ErrInvalidUser, p)
		}
	}
	for _, r := range in.Roles {
		if !domain.KnownRole(domain.RoleName(r)) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidUser, r)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	permissions := in.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	roles := in.Roles
	if roles == nil {
		roles = []string{}
	}

	now := s.now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Roles:        roles,
		Permissions:  permissions,
		TenantIDs:    in.TenantIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login checks the password and issues a credential. Unknown users and bad
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (string, error) {
	now := s.now()
	subject := user.Email
	if subject == "" {
		subject = user.Username
	}
	// An absent permissions claim reads as incomplete; a powerless account
	// still gets an empty list.
	permissions := user.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}

	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    devIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID:       json.Number(strconv.FormatInt(user.UserID, 10)),
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Roles:        roles,
		Permissions:  permissions,
		TenantIDs:    user.TenantIDs,
		IsAdmin:      user.HasRole(domain.RoleAdmin),
		IsSuperAdmin: user.HasRole(domain.RoleSuperAdmin),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign credential: %w", err)
	}
	return token, nil
}
