package domain

import (
	"sort"
	"strings"
)

// Family is the uppercase prefix grouping related permissions.
type Family string

const (
	FamilyUsers       Family = "USER_MGMT"
	FamilyTenants     Family = "TENANT_MGMT"
	FamilyRoles       Family = "ROLE_MGMT"
	FamilyPermissions Family = "PERMISSION_MGMT"
	FamilyProducts    Family = "PRODUCT_MGMT"
	FamilyModules     Family = "MODULE_MGMT"
	FamilyGroups      Family = "GROUP_MGMT"
	FamilyPayments    Family = "PAYMENT_MGMT"
	FamilyAnalytics   Family = "ANALYTICS_USER"
	FamilyAudit       Family = "CORE_AUDIT"
)

// Families lists every resource family the console knows about.
var Families = []Family{
	FamilyUsers,
	FamilyTenants,
	FamilyRoles,
	FamilyPermissions,
	FamilyProducts,
	FamilyModules,
	FamilyGroups,
	FamilyPayments,
	FamilyAnalytics,
	FamilyAudit,
}

// Action is the verb half of a permission name.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionAdmin  Action = "admin"

	ActionProcess           Action = "process"
	ActionRefund            Action = "refund"
	ActionAssignRoles       Action = "assign_roles"
	ActionAssignGroups      Action = "assign_groups"
	ActionConfig            Action = "config"
	ActionMultiTenantAccess Action = "multi_tenant_access"
)

// StandardActions is the five-action template every family exposes.
var StandardActions = []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionAdmin}

// familyExtras holds the family-specific verbs beyond the standard template.
var familyExtras = map[Family][]Action{
	FamilyUsers:    {ActionAssignRoles, ActionAssignGroups},
	FamilyTenants:  {ActionMultiTenantAccess},
	FamilyModules:  {ActionConfig},
	FamilyPayments: {ActionProcess, ActionRefund},
}

// PermissionName is a canonical "FAMILY:action" string. Equality is exact and
// case-sensitive.
type PermissionName string

// Perm builds the permission name for a family and action.
func Perm(f Family, a Action) PermissionName {
	return PermissionName(string(f) + ":" + string(a))
}

// Split separates the name on the first ':'. A name without a separator is
// returned whole as the resource with an empty action.
func (p PermissionName) Split() (resource, action string) {
	resource, action, _ = strings.Cut(string(p), ":")
	return resource, action
}

func (p PermissionName) String() string { return string(p) }

var catalogue = buildCatalogue()

func buildCatalogue() map[PermissionName]struct{} {
	known := make(map[PermissionName]struct{})
	for _, f := range Families {
		for _, a := range StandardActions {
			known[Perm(f, a)] = struct{}{}
		}
		for _, a := range familyExtras[f] {
			known[Perm(f, a)] = struct{}{}
		}
	}
	return known
}

// KnownPermission reports whether p is part of the permission catalogue the
// console is built against. Unknown names are usually typos at a call site.
func KnownPermission(p PermissionName) bool {
	_, ok := catalogue[p]
	return ok
}

// Catalogue returns every known permission name, sorted.
func Catalogue() []PermissionName {
	out := make([]PermissionName, 0, len(catalogue))
	for p := range catalogue {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Permission is the display view of a permission name, split into resource
// and action for grouping.
type Permission struct {
	Name     PermissionName `json:"name"`
	Resource string         `json:"resource"`
	Action   string         `json:"action"`
}

// NewPermission decomposes name into a Permission value.
func NewPermission(name PermissionName) Permission {
	resource, action := name.Split()
	return Permission{Name: name, Resource: resource, Action: action}
}

// PermissionSet is an immutable set of permission names.
type PermissionSet struct {
	names map[PermissionName]struct{}
}

// NewPermissionSet builds a set from names; duplicates collapse.
func NewPermissionSet(names ...PermissionName) PermissionSet {
	if len(names) == 0 {
		return PermissionSet{}
	}
	m := make(map[PermissionName]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return PermissionSet{names: m}
}

// Has reports exact membership of name.
func (s PermissionSet) Has(name PermissionName) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of distinct names.
func (s PermissionSet) Len() int { return len(s.names) }

// Names returns the members sorted.
func (s PermissionSet) Names() []PermissionName {
	out := make([]PermissionName, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
