package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider tells how the account authenticates.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

// User is a marketplace account. Tutor accounts additionally own a
// Tutor profile keyed by the same ID.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Provider     AuthProvider
	GoogleID     string
	Phone        string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether local credential login is possible for
// this account. Google accounts without a password can only use OAuth.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// NeedsRoleSelection reports whether the account still has to pick a
// role. Only freshly created OAuth accounts are in this state.
func (u *User) NeedsRoleSelection() bool {
	return u.Role == RoleUnset
}
