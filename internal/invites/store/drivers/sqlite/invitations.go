package sqlite

import (
	"context"
	"database/sql"

	"github.com/bosshelper/backend/internal/invites/domain"
	"github.com/bosshelper/backend/internal/invites/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, household_id, invited_by, contact, contact_kind,
	role, code_hash, status, expires_at, consumed_by, created_at, updated_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.HouseholdID, inv.InvitedBy, inv.Contact, string(inv.ContactKind),
		string(inv.Role), inv.CodeHash, string(domain.StatusPending), inv.ExpiresAt,
		mapStringNull(inv.ConsumedBy), now, now,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE id = ?`,
		id,
	)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetPendingInvitationByContactAndHash(ctx context.Context, contact, codeHash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE contact = ? AND code_hash = ? AND status = 'pending'`,
		contact, codeHash,
	)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) RevokePendingInvitations(ctx context.Context, householdID, contact string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = 'revoked', updated_at = ?
		WHERE household_id = ? AND contact = ? AND status = 'pending'`,
		nowUTC(), householdID, contact,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invitationsRepo) MarkInvitationConsumed(ctx context.Context, invitationID, consumedBy string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = 'consumed', consumed_by = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		consumedBy, nowUTC(), invitationID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Already consumed, revoked, or never existed.
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) ListInvitationsForHousehold(ctx context.Context, householdID string) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE household_id = ?
		ORDER BY created_at DESC`,
		householdID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvitation(s scanner) (domain.Invitation, error) {
	var (
		inv                domain.Invitation
		kind, role, status string
		consumedBy         sql.NullString
	)
	err := s.Scan(&inv.ID, &inv.HouseholdID, &inv.InvitedBy, &inv.Contact, &kind,
		&role, &inv.CodeHash, &status, &inv.ExpiresAt, &consumedBy,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.ContactKind = domain.ContactKind(kind)
	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	inv.ConsumedBy = mapNullString(consumedBy)
	return inv, nil
}
