package domain

import "github.com/google/uuid"

// RoleName identifies a role. Matching is exact and case-sensitive.
type RoleName string

const (
	RoleAdmin       RoleName = "admin"
	RoleSuperAdmin  RoleName = "super_admin"
	RoleSystemAdmin RoleName = "system_admin"
	RoleTenantAdmin RoleName = "tenant_admin"
)

// roleNamespace seeds the name-based role IDs.
var roleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:admin-console:role"))

// Role is a role value object. Permissions stay empty: role expansion already
// happened server-side into the flat permission list of the claims.
type Role struct {
	ID          string       `json:"id"`
	Name        RoleName     `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// NewRole returns the role with a stable ID derived from its name.
func NewRole(name RoleName) Role {
	return Role{
		ID:          uuid.NewSHA1(roleNamespace, []byte(name)).String(),
		Name:        name,
		Permissions: []Permission{},
	}
}

// KnownRole reports whether r is one of the roles the console recognises.
func KnownRole(r RoleName) bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleSystemAdmin, RoleTenantAdmin:
		return true
	}
	return false
}
