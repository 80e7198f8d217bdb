package domain

import "time"

// Role is a member's standing within a household. Only bosses may invite.
type Role string

const (
	RoleBoss   Role = "boss"
	RoleHelper Role = "helper"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBoss || r == RoleHelper
}

// Membership ties a user to a household with a role. One row per
// (user, household) pair.
type Membership struct {
	ID          string
	UserID      string
	HouseholdID string
	Role        Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
