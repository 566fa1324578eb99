package handler

import (
	"time"

	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/guard"
	"github.com/consoleiam/admin-console/internal/core/service"
)

// --- Request → domain ---

func toProfile(req profileRequest) *domain.Profile {
	p := &domain.Profile{
		ID:           req.ID,
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		TenantIDs:    req.TenantIDs,
		IsAdmin:      req.IsAdmin,
		IsSuperAdmin: req.IsSuperAdmin,
		Roles:        make([]domain.Role, 0, len(req.Roles)),
		Permissions:  make([]domain.Permission, 0, len(req.Permissions)),
	}
	p.DisplayName = domain.DisplayName(req.FirstName, req.LastName)

	for _, r := range req.Roles {
		role := domain.NewRole(domain.RoleName(r.Name))
		if r.ID != "" {
			role.ID = r.ID
		}
		p.Roles = append(p.Roles, role)
	}
	for _, perm := range req.Permissions {
		p.Permissions = append(p.Permissions, domain.NewPermission(domain.PermissionName(perm.Name)))
	}
	return p
}

func toTenant(req tenantRequest) *domain.Tenant {
	if req.ID == "" {
		return nil
	}
	return &domain.Tenant{ID: req.ID, Code: req.Code, Name: req.Name}
}

func toRequirement(req checkRequest) guard.Requirement {
	r := guard.Requirement{
		Permission: domain.PermissionName(req.Permission),
		Role:       domain.RoleName(req.Role),
	}
	if req.Mode == "any" {
		r.Mode = guard.RequireAny
	}
	for _, p := range req.Permissions {
		r.Permissions = append(r.Permissions, domain.PermissionName(p))
	}
	for _, role := range req.Roles {
		r.Roles = append(r.Roles, domain.RoleName(role))
	}
	return r
}

func toRegisterInput(req registerRequest) service.RegisterInput {
	return service.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Roles:       req.Roles,
		Permissions: req.Permissions,
		TenantIDs:   req.TenantIDs,
	}
}

// --- domain → Response ---

func toSessionResponse(s *domain.Session, expiresAt func(string) (time.Time, bool)) sessionResponse {
	resp := sessionResponse{
		Authenticated: s.Authenticated(),
		Profile:       s.Profile().Clone(),
		Permissions:   s.Permissions().Names(),
	}
	if t := s.Tenant(); t != nil {
		cp := *t
		resp.Tenant = &cp
	}
	if resp.Authenticated && expiresAt != nil {
		if at, ok := expiresAt(s.Credential()); ok {
			at = at.UTC()
			resp.ExpiresAt = &at
		}
	}
	return resp
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		Roles:       u.Roles,
		Permissions: u.Permissions,
		TenantIDs:   u.TenantIDs,
	}
}
