package handler

import (
	"time"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username    string   `json:"username"    validate:"required,min=3"`
	Password    string   `json:"password"    validate:"required,min=8"`
	Email       string   `json:"email"       validate:"omitempty,email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Roles       []string `json:"roles"       validate:"dive,required"`
	Permissions []string `json:"permissions" validate:"dive,required"`
	TenantIDs   []string `json:"tenantIds"   validate:"dive,required"`
}

type tokenRequest struct {
	// Token may be empty, which logs out.
	Token string `json:"token"`
}

type permissionRequest struct {
	Name string `json:"name" validate:"required"`
}

type roleRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

type profileRequest struct {
	ID           string              `json:"id"          validate:"required"`
	Email        string              `json:"email"`
	Username     string              `json:"username"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Roles        []roleRequest       `json:"roles"       validate:"dive"`
	Permissions  []permissionRequest `json:"permissions" validate:"dive"`
	TenantIDs    []string            `json:"tenantIds"`
	IsAdmin      bool                `json:"isAdmin"`
	IsSuperAdmin bool                `json:"isSuperAdmin"`
}

type tenantRequest struct {
	// An empty ID clears the active tenant.
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type checkRequest struct {
	Permission  string   `json:"permission"`
	Permissions []string `json:"permissions"`
	Mode        string   `json:"mode"     validate:"omitempty,oneof=all any"`
	Role        string   `json:"role"`
	Roles       []string `json:"roles"`
	Resource    string   `json:"resource" validate:"required_with=Action"`
	Action      string   `json:"action"   validate:"required_with=Resource"`
}

type checkResponse struct {
	Allowed bool `json:"allowed"`
	// Unknown lists requested permission names missing from the catalogue.
	Unknown []domain.PermissionName `json:"unknown,omitempty"`
}

type sessionResponse struct {
	Authenticated bool                    `json:"authenticated"`
	Profile       *domain.Profile         `json:"profile,omitempty"`
	Permissions   []domain.PermissionName `json:"permissions"`
	Tenant        *domain.Tenant          `json:"tenant,omitempty"`
	ExpiresAt     *time.Time              `json:"expiresAt,omitempty"`
}

type userResponse struct {
	ID          string   `json:"id"`
	UserID      int64    `json:"userId"`
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	TenantIDs   []string `json:"tenantIds,omitempty"`
}
