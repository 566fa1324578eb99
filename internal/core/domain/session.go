package domain

// Tenant is the active tenant context selected in the console.
type Tenant struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// Session is an immutable projection of at most one credential. A session is
// authenticated exactly when it carries a credential, and its permission set
// is always the permission names of its profile. Build a new Session instead
// of mutating one.
type Session struct {
	credential  string
	profile     *Profile
	permissions PermissionSet
	tenant      *Tenant
}

// NewSession derives the permission set from profile. An empty credential
// yields an unauthenticated session with no profile or permissions.
func NewSession(credential string, profile *Profile, tenant *Tenant) *Session {
	if credential == "" {
		return &Session{tenant: tenant}
	}
	return &Session{
		credential:  credential,
		profile:     profile,
		permissions: NewPermissionSet(profile.PermissionNames()...),
		tenant:      tenant,
	}
}

// Credential returns the raw credential, or "" when unauthenticated.
func (s *Session) Credential() string {
	if s == nil {
		return ""
	}
	return s.credential
}

// Authenticated reports whether the session holds a credential.
func (s *Session) Authenticated() bool {
	return s != nil && s.credential != ""
}

// Profile returns the session profile. Callers must treat it as read-only.
func (s *Session) Profile() *Profile {
	if s == nil {
		return nil
	}
	return s.profile
}

// Permissions returns the flat permission set.
func (s *Session) Permissions() PermissionSet {
	if s == nil {
		return PermissionSet{}
	}
	return s.permissions
}

// Tenant returns the active tenant, if any.
func (s *Session) Tenant() *Tenant {
	if s == nil {
		return nil
	}
	return s.tenant
}

// WithTenant returns a copy of s with the tenant slot replaced.
func (s *Session) WithTenant(t *Tenant) *Session {
	if s == nil {
		return &Session{tenant: t}
	}
	out := *s
	out.tenant = t
	return &out
}

// WithProfile returns a copy of s with profile replaced and permissions
// recomputed from it.
func (s *Session) WithProfile(p *Profile) *Session {
	return NewSession(s.Credential(), p, s.Tenant())
}
