package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consoleiam/admin-console/internal/core/capability"
	"github.com/consoleiam/admin-console/internal/core/domain"
)

func TestDerive_Empty(t *testing.T) {
	assert.Equal(t, Menu{Dashboard: true}, Derive(capability.Capabilities{}))
}

func TestDerive_FromSession(t *testing.T) {
	claims := &domain.Claims{
		UserID:      "1",
		Roles:       []string{"system_admin"},
		Permissions: []string{"USER_MGMT:read", "CORE_AUDIT:read", "PRODUCT_MGMT:create"},
	}
	s := domain.NewSession("h.p.s", domain.NewProfile(claims), nil)

	m := Derive(capability.Derive(s))
	assert.Equal(t, Menu{
		Dashboard:      true,
		Users:          true,
		AuditLogs:      true,
		SystemSettings: true,
	}, m)
}

func TestDerive_EverySection(t *testing.T) {
	c := capability.Capabilities{IsSystemAdmin: true}
	c.Users.CanView = true
	c.Tenants.CanView = true
	c.Roles.CanView = true
	c.Products.CanView = true
	c.Modules.CanView = true
	c.Audit.CanView = true
	c.Payments.CanView = true

	m := Derive(c)
	assert.True(t, m.Users && m.Tenants && m.Roles && m.Products && m.Modules && m.AuditLogs && m.Payments && m.SystemSettings)
}
