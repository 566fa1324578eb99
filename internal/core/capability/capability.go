// Package capability turns raw permission strings into the named flags views
// consume, so no view has to spell a permission name itself.
package capability

import (
	"github.com/consoleiam/admin-console/internal/core/authz"
	"github.com/consoleiam/admin-console/internal/core/domain"
)

// Family holds the five standard flags of one resource family.
type Family struct {
	CanView   bool `json:"canView"`
	CanCreate bool `json:"canCreate"`
	CanUpdate bool `json:"canUpdate"`
	CanDelete bool `json:"canDelete"`
	CanAdmin  bool `json:"canAdmin"`
	// CanManage is set when any mutating action is granted.
	CanManage bool `json:"canManage"`
}

// Capabilities is the full flag set for one session snapshot.
type Capabilities struct {
	Users       Family `json:"users"`
	Tenants     Family `json:"tenants"`
	Roles       Family `json:"roles"`
	Permissions Family `json:"permissions"`
	Products    Family `json:"products"`
	Modules     Family `json:"modules"`
	Groups      Family `json:"groups"`
	Payments    Family `json:"payments"`
	Analytics   Family `json:"analytics"`
	Audit       Family `json:"audit"`

	CanProcessPayments  bool `json:"canProcessPayments"`
	CanRefundPayments   bool `json:"canRefundPayments"`
	CanAssignUserRoles  bool `json:"canAssignUserRoles"`
	CanAssignUserGroups bool `json:"canAssignUserGroups"`
	CanConfigModules    bool `json:"canConfigModules"`

	IsAdmin                  bool `json:"isAdmin"`
	IsSuperAdmin             bool `json:"isSuperAdmin"`
	IsSystemAdmin            bool `json:"isSystemAdmin"`
	IsTenantAdmin            bool `json:"isTenantAdmin"`
	IsMultiTenantUser        bool `json:"isMultiTenantUser"`
	CanAccessMultipleTenants bool `json:"canAccessMultipleTenants"`
}

// Derive evaluates every flag against s. All flags come from the same
// snapshot, so they never disagree with each other.
func Derive(s *domain.Session) Capabilities {
	has := func(f domain.Family, a domain.Action) bool {
		return authz.HasPermission(s, domain.Perm(f, a))
	}

	c := Capabilities{
		Users:       familyFlags(s, string(domain.FamilyUsers)),
		Tenants:     familyFlags(s, string(domain.FamilyTenants)),
		Roles:       familyFlags(s, string(domain.FamilyRoles)),
		Permissions: familyFlags(s, string(domain.FamilyPermissions)),
		Products:    familyFlags(s, string(domain.FamilyProducts)),
		Modules:     familyFlags(s, string(domain.FamilyModules)),
		Groups:      familyFlags(s, string(domain.FamilyGroups)),
		Payments:    familyFlags(s, string(domain.FamilyPayments)),
		Analytics:   familyFlags(s, string(domain.FamilyAnalytics)),
		Audit:       familyFlags(s, string(domain.FamilyAudit)),

		CanProcessPayments:  has(domain.FamilyPayments, domain.ActionProcess),
		CanRefundPayments:   has(domain.FamilyPayments, domain.ActionRefund),
		CanAssignUserRoles:  has(domain.FamilyUsers, domain.ActionAssignRoles),
		CanAssignUserGroups: has(domain.FamilyUsers, domain.ActionAssignGroups),
		CanConfigModules:    has(domain.FamilyModules, domain.ActionConfig),

		IsAdmin:       authz.HasRole(s, domain.RoleAdmin),
		IsSuperAdmin:  authz.HasRole(s, domain.RoleSuperAdmin),
		IsSystemAdmin: authz.HasAnyRole(s, domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleSystemAdmin),
		IsTenantAdmin: authz.HasRole(s, domain.RoleTenantAdmin),
	}

	if s.Authenticated() && s.Profile() != nil {
		c.IsMultiTenantUser = len(s.Profile().TenantIDs) > 1
	}
	c.CanAccessMultipleTenants = c.IsMultiTenantUser || has(domain.FamilyTenants, domain.ActionMultiTenantAccess)
	return c
}

// For returns the flags of family f. ok is false for a family the console
// does not know.
func (c Capabilities) For(f domain.Family) (Family, bool) {
	switch f {
	case domain.FamilyUsers:
		return c.Users, true
	case domain.FamilyTenants:
		return c.Tenants, true
	case domain.FamilyRoles:
		return c.Roles, true
	case domain.FamilyPermissions:
		return c.Permissions, true
	case domain.FamilyProducts:
		return c.Products, true
	case domain.FamilyModules:
		return c.Modules, true
	case domain.FamilyGroups:
		return c.Groups, true
	case domain.FamilyPayments:
		return c.Payments, true
	case domain.FamilyAnalytics:
		return c.Analytics, true
	case domain.FamilyAudit:
		return c.Audit, true
	}
	return Family{}, false
}

func familyFlags(s *domain.Session, prefix string) Family {
	has := func(a domain.Action) bool {
		return authz.HasPermission(s, domain.PermissionName(prefix+":"+string(a)))
	}
	f := Family{
		CanView:   has(domain.ActionRead),
		CanCreate: has(domain.ActionCreate),
		CanUpdate: has(domain.ActionUpdate),
		CanDelete: has(domain.ActionDelete),
		CanAdmin:  has(domain.ActionAdmin),
	}
	f.CanManage = f.CanCreate || f.CanUpdate || f.CanDelete || f.CanAdmin
	return f
}
