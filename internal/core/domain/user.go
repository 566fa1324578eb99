package domain

import "time"

// User is an account in the local development user directory. Production
// consoles log in against the identity backend and never see this type.
type User struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Permissions  []string  `json:"permissions"`
	TenantIDs    []string  `json:"tenantIds,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role RoleName) bool {
	for _, r := range u.Roles {
		if RoleName(r) == role {
			return true
		}
	}
	return false
}
