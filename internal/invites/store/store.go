package store

import (
	"context"
	"errors"

	"github.com/bosshelper/backend/internal/invites/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Households() Households
	Memberships() Memberships
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error, the transaction is rolled back; otherwise it is committed.
	// This is the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Households interface {
	// CreateHousehold inserts a new household (id is provided by app via ULID).
	CreateHousehold(ctx context.Context, h domain.Household) error

	// GetHouseholdByID returns a household by id.
	GetHouseholdByID(ctx context.Context, id string) (domain.Household, error)

	// ListHouseholdsForUser returns every household the user belongs to,
	// newest first.
	ListHouseholdsForUser(ctx context.Context, userID string) ([]domain.Household, error)
}

type Memberships interface {
	// CreateMembership inserts a new membership. Returns ErrAlreadyExists
	// when the (user, household) pair already has a row.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership for a (user, household) pair.
	GetMembership(ctx context.Context, userID, householdID string) (domain.Membership, error)

	// ListMembershipsForHousehold returns all members of a household.
	ListMembershipsForHousehold(ctx context.Context, householdID string) ([]domain.Membership, error)
}

type Invitations interface {
	// CreateInvitation writes a new pending invitation (code_hash is the
	// SHA-256 fingerprint of the six-digit code).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation regardless of status.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetPendingInvitationByContactAndHash returns the pending invitation
	// for a contact whose code_hash matches. Expiry is the caller's problem.
	GetPendingInvitationByContactAndHash(ctx context.Context, contact, codeHash string) (domain.Invitation, error)

	// RevokePendingInvitations flips every pending invitation for the
	// (household, contact) pair to revoked and returns how many changed.
	RevokePendingInvitations(ctx context.Context, householdID, contact string) (int64, error)

	// MarkInvitationConsumed sets status=consumed and records who redeemed it.
	MarkInvitationConsumed(ctx context.Context, invitationID, consumedBy string) error

	// ListInvitationsForHousehold returns all invitations for a household,
	// newest first.
	ListInvitationsForHousehold(ctx context.Context, householdID string) ([]domain.Invitation, error)
}
