package domain

import "strings"

// Profile is the read-only user view assembled from claims.
type Profile struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	DisplayName  string       `json:"displayName"`
	Username     string       `json:"username"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Roles        []Role       `json:"roles"`
	Permissions  []Permission `json:"permissions"`
	TenantIDs    []string     `json:"tenantIds"`
	IsAdmin      bool         `json:"isAdmin"`
	IsSuperAdmin bool         `json:"isSuperAdmin"`
}

// NewProfile derives a profile from claims. Role and permission order follows
// the claims lists.
func NewProfile(c *Claims) *Profile {
	if c == nil {
		return nil
	}

	roles := make([]Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, NewRole(RoleName(r)))
	}

	perms := make([]Permission, 0, len(c.Permissions))
	for _, p := range c.Permissions {
		perms = append(perms, NewPermission(PermissionName(p)))
	}

	return &Profile{
		ID:           c.UserID.String(),
		Email:        c.Subject,
		DisplayName:  DisplayName(c.FirstName, c.LastName),
		Username:     c.Username,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Roles:        roles,
		Permissions:  perms,
		TenantIDs:    cloneStrings(c.TenantIDs),
		IsAdmin:      c.IsAdmin,
		IsSuperAdmin: c.IsSuperAdmin,
	}
}

// PermissionNames returns the flat permission names in profile order.
func (p *Profile) PermissionNames() []PermissionName {
	if p == nil {
		return nil
	}
	out := make([]PermissionName, 0, len(p.Permissions))
	for _, perm := range p.Permissions {
		out = append(out, perm.Name)
	}
	return out
}

// RoleNames returns the role names in profile order.
func (p *Profile) RoleNames() []RoleName {
	if p == nil {
		return nil
	}
	out := make([]RoleName, 0, len(p.Roles))
	for _, r := range p.Roles {
		out = append(out, r.Name)
	}
	return out
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.Roles = make([]Role, len(p.Roles))
	for i, r := range p.Roles {
		r.Permissions = append([]Permission(nil), r.Permissions...)
		out.Roles[i] = r
	}
	out.Permissions = append([]Permission(nil), p.Permissions...)
	out.TenantIDs = cloneStrings(p.TenantIDs)
	return &out
}

// DisplayName joins the trimmed first and last names with a single space,
// dropping whichever part is blank.
func DisplayName(first, last string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
