package domain

import "time"

// ContactKind distinguishes how an invitation is delivered.
type ContactKind string

const (
	ContactEmail ContactKind = "email"
	ContactPhone ContactKind = "phone"
)

// InvitationStatus is the lifecycle state of an invitation. Rows are never
// deleted; superseded or redeemed invitations are flipped to revoked/consumed.
type InvitationStatus string

const (
	StatusPending  InvitationStatus = "pending"
	StatusConsumed InvitationStatus = "consumed"
	StatusRevoked  InvitationStatus = "revoked"
)

// Invitation is a pending offer to join a household. CodeHash is the SHA-256
// fingerprint of the six-digit code; the code itself is never stored.
type Invitation struct {
	ID          string
	HouseholdID string
	InvitedBy   string
	Contact     string
	ContactKind ContactKind
	Role        Role
	CodeHash    string
	Status      InvitationStatus
	ExpiresAt   time.Time
	ConsumedBy  string // empty until redeemed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expired reports whether the invitation's deadline has passed at t.
func (i Invitation) Expired(t time.Time) bool {
	return t.After(i.ExpiresAt)
}
