package entity

// Role identifies what a user account is allowed to do in the marketplace.
type Role string

const (
	// RoleAdmin can manage the catalog, locations and tutor verification.
	RoleAdmin Role = "admin"

	// RoleTutor marks an account with a tutor profile extension.
	RoleTutor Role = "tutor"

	// RoleStudent can search tutors, book sessions and leave ratings.
	RoleStudent Role = "student"

	// RoleUnset is the state of an OAuth account before role selection.
	RoleUnset Role = ""
)

// Valid reports whether the role is one of the assignable roles.
// RoleUnset is a legal persisted state but not an assignable one.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleStudent:
		return true
	default:
		return false
	}
}

// Selectable reports whether the role may be chosen through the OAuth
// role-selection flow. Admin accounts are never self-assigned.
func (r Role) Selectable() bool {
	return r == RoleTutor || r == RoleStudent
}

func (r Role) String() string {
	return string(r)
}
