// Package navigation narrows the capability flags to the sections of the
// console menu.
package navigation

import "github.com/consoleiam/admin-console/internal/core/capability"

// Menu holds one visibility flag per top-level section.
type Menu struct {
	Dashboard      bool `json:"dashboard"`
	Users          bool `json:"users"`
	Tenants        bool `json:"tenants"`
	Roles          bool `json:"roles"`
	Products       bool `json:"products"`
	Modules        bool `json:"modules"`
	AuditLogs      bool `json:"auditLogs"`
	Payments       bool `json:"payments"`
	SystemSettings bool `json:"systemSettings"`
}

// Derive selects the menu flags from c. Dashboard is always visible.
func Derive(c capability.Capabilities) Menu {
	return Menu{
		Dashboard:      true,
		Users:          c.Users.CanView,
		Tenants:        c.Tenants.CanView,
		Roles:          c.Roles.CanView,
		Products:       c.Products.CanView,
		Modules:        c.Modules.CanView,
		AuditLogs:      c.Audit.CanView,
		Payments:       c.Payments.CanView,
		SystemSettings: c.IsSystemAdmin,
	}
}
