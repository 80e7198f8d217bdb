package invitesdk

import "time"

// ErrorResponse is the error body shape shared by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// InvitationRequest asks the service to mint and deliver an invitation code.
type InvitationRequest struct {
	HouseholdID string `json:"household_id"`
	Role        string `json:"role,omitempty"`
	Contact     string `json:"contact"`
	ContactKind string `json:"contact_kind"`
	TTLMinutes  *int   `json:"ttl_minutes,omitempty"`
}

// InvitationResponse acknowledges issuance. It never carries the code itself.
type InvitationResponse struct {
	InvitationID string    `json:"invitation_id"`
	HouseholdID  string    `json:"household_id"`
	Role         string    `json:"role"`
	ContactKind  string    `json:"contact_kind"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RedeemRequest submits a received code to join a household.
type RedeemRequest struct {
	Contact string `json:"contact"`
	Code    string `json:"code"`
}

// RedeemResponse reports the household the caller just joined.
type RedeemResponse struct {
	HouseholdID string `json:"household_id"`
	Role        string `json:"role"`
}

// HouseholdCreateRequest creates a new household owned by the caller.
type HouseholdCreateRequest struct {
	Name string `json:"name"`
}

// Household is a household the caller belongs to, with the caller's role.
type Household struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// HouseholdListResponse wraps the household listing.
type HouseholdListResponse struct {
	Households []Household `json:"households"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
