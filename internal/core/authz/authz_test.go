package authz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

func sessionWith(perms []string, roles []string) *domain.Session {
	claims := &domain.Claims{UserID: "7", Roles: roles, Permissions: perms}
	return domain.NewSession("h.p.s", domain.NewProfile(claims), nil)
}

type fixedReader struct{ s *domain.Session }

func (f fixedReader) Snapshot() *domain.Session { return f.s }

func TestHasPermission(t *testing.T) {
	s := sessionWith([]string{"USER_MGMT:read", "PRODUCT_MGMT:create"}, nil)

	assert.True(t, HasPermission(s, "USER_MGMT:read"))
	assert.True(t, HasPermission(s, "PRODUCT_MGMT:create"))
	assert.False(t, HasPermission(s, "user_mgmt:read"), "matching is case-sensitive")
	assert.False(t, HasPermission(s, "PRODUCT_MGT:create"))
	assert.False(t, HasPermission(s, "USER_MGMT"))
}

func TestHasPermission_UnrelatedPermissionsDoNotMatter(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	catalogue := domain.Catalogue()
	target := domain.Perm(domain.FamilyRoles, domain.ActionUpdate)

	for i := 0; i < 200; i++ {
		var perms []string
		for _, p := range catalogue {
			if p != target && r.IntN(2) == 0 {
				perms = append(perms, string(p))
			}
		}
		without := sessionWith(perms, nil)
		with := sessionWith(append(append([]string(nil), perms...), string(target)), nil)

		assert.False(t, HasPermission(without, target))
		assert.True(t, HasPermission(with, target))
	}
}

func TestRoles(t *testing.T) {
	s := sessionWith(nil, []string{"admin", "tenant_admin"})

	assert.True(t, HasRole(s, domain.RoleAdmin))
	assert.False(t, HasRole(s, "Admin"))
	assert.True(t, HasAnyRole(s, domain.RoleSuperAdmin, domain.RoleTenantAdmin))
	assert.False(t, HasAnyRole(s, domain.RoleSuperAdmin, domain.RoleSystemAdmin))
	assert.False(t, HasAnyRole(s))
}

func TestCanAccessResource(t *testing.T) {
	s := sessionWith([]string{"PAYMENT_MGMT:refund", "LEGACY"}, nil)

	assert.True(t, CanAccessResource(s, "PAYMENT_MGMT", "refund"))
	assert.False(t, CanAccessResource(s, "PAYMENT_MGMT", "process"))
	assert.True(t, CanAccessResource(s, "LEGACY", ""))
	assert.False(t, CanAccessResource(s, "payment_mgmt", "refund"))
}

func TestUnauthenticatedIsAlwaysFalse(t *testing.T) {
	for _, s := range []*domain.Session{nil, domain.NewSession("", nil, &domain.Tenant{ID: "t"})} {
		assert.False(t, HasPermission(s, "USER_MGMT:read"))
		assert.False(t, HasRole(s, domain.RoleAdmin))
		assert.False(t, HasAnyRole(s, domain.RoleAdmin, domain.RoleSuperAdmin))
		assert.False(t, CanAccessResource(s, "USER_MGMT", "read"))
	}
}

func TestResolver(t *testing.T) {
	reader := &fixedReader{s: sessionWith([]string{"USER_MGMT:read"}, []string{"admin"})}
	r := NewResolver(reader)

	assert.True(t, r.HasPermission("USER_MGMT:read"))
	assert.True(t, r.HasRole(domain.RoleAdmin))
	assert.True(t, r.HasAnyRole(domain.RoleSuperAdmin, domain.RoleAdmin))
	assert.True(t, r.CanAccessResource("USER_MGMT", "read"))

	reader.s = domain.NewSession("", nil, nil)
	assert.False(t, r.HasPermission("USER_MGMT:read"), "resolver reads the current snapshot")

	var nilResolver *Resolver
	assert.False(t, nilResolver.HasPermission("USER_MGMT:read"))
}
