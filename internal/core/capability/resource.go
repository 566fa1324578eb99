package capability

import (
	"strings"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// keywords maps the resource keywords views pass around onto families.
var keywords = map[string]domain.Family{
	"user":        domain.FamilyUsers,
	"users":       domain.FamilyUsers,
	"tenant":      domain.FamilyTenants,
	"tenants":     domain.FamilyTenants,
	"role":        domain.FamilyRoles,
	"roles":       domain.FamilyRoles,
	"permission":  domain.FamilyPermissions,
	"permissions": domain.FamilyPermissions,
	"product":     domain.FamilyProducts,
	"products":    domain.FamilyProducts,
	"module":      domain.FamilyModules,
	"modules":     domain.FamilyModules,
	"group":       domain.FamilyGroups,
	"groups":      domain.FamilyGroups,
	"payment":     domain.FamilyPayments,
	"payments":    domain.FamilyPayments,
	"analytics":   domain.FamilyAnalytics,
	"audit":       domain.FamilyAudit,
	"audits":      domain.FamilyAudit,
	"audit_logs":  domain.FamilyAudit,
}

// Resource is the flag set for an ad-hoc resource keyword.
type Resource struct {
	Keyword string `json:"keyword"`
	Prefix  string `json:"prefix"`
	// Known is false when the keyword is not in the table and Prefix is the
	// raw keyword. Such lookups almost never match a real permission.
	Known bool `json:"known"`
	Family
}

// ForResource evaluates the standard flags for keyword. Keywords are matched
// case-insensitively; an unknown keyword is used verbatim as the permission
// prefix so legacy "resource:action" grants keep working.
func ForResource(s *domain.Session, keyword string) Resource {
	r := Resource{Keyword: keyword, Prefix: keyword}
	if f, ok := LookupKeyword(keyword); ok {
		r.Prefix = string(f)
		r.Known = true
	}
	r.Family = familyFlags(s, r.Prefix)
	return r
}

// LookupKeyword resolves keyword to its family.
func LookupKeyword(keyword string) (domain.Family, bool) {
	f, ok := keywords[strings.ToLower(strings.TrimSpace(keyword))]
	return f, ok
}
