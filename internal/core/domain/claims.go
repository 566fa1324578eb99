package domain

import (
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in a credential. Subject, IssuedAt and
// ExpiresAt come from the registered claims; the rest is the console's own
// schema. The signature is never checked client-side, so nothing here may be
// the sole gate for a state-changing operation.
type Claims struct {
	jwt.RegisteredClaims

	UserID       json.Number `json:"userId,omitempty"`
	Username     string      `json:"username"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Roles        []string    `json:"roles"`
	Permissions  []string    `json:"permissions"`
	TenantIDs    []string    `json:"tenantIds,omitempty"`
	IsAdmin      bool        `json:"isAdmin"`
	IsSuperAdmin bool        `json:"isSuperAdmin"`
}

// Validate checks the fields a usable session needs. A nil permissions list
// means the claim was absent; an empty list is a valid, powerless grant.
func (c *Claims) Validate() error {
	switch {
	case c.UserID == "":
		return fmt.Errorf("%w: missing userId", ErrIncompleteClaims)
	case c.Permissions == nil:
		return fmt.Errorf("%w: missing permissions", ErrIncompleteClaims)
	case c.ExpiresAt == nil:
		return fmt.Errorf("%w: missing exp", ErrIncompleteClaims)
	case c.IssuedAt != nil && !c.ExpiresAt.After(c.IssuedAt.Time):
		return fmt.Errorf("%w: exp not after iat", ErrIncompleteClaims)
	}
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c *Claims) Clone() *Claims {
	if c == nil {
		return nil
	}
	out := *c
	out.Audience = cloneStrings(c.Audience)
	out.Roles = cloneStrings(c.Roles)
	out.Permissions = cloneStrings(c.Permissions)
	out.TenantIDs = cloneStrings(c.TenantIDs)
	return &out
}

func cloneStrings[S ~[]string](in S) S {
	if in == nil {
		return nil
	}
	out := make(S, len(in))
	copy(out, in)
	return out
}
