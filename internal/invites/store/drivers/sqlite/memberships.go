package sqlite

import (
	"context"

	"github.com/bosshelper/backend/internal/invites/domain"
)

type membershipsRepo struct {
	db dbtx
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (id, user_id, household_id, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.HouseholdID, string(m.Role), now, now,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, householdID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, household_id, role, created_at, updated_at
		FROM memberships
		WHERE user_id = ? AND household_id = ?`,
		userID, householdID,
	)

	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListMembershipsForHousehold(ctx context.Context, householdID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, household_id, role, created_at, updated_at
		FROM memberships
		WHERE household_id = ?
		ORDER BY created_at ASC`,
		householdID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(s scanner) (domain.Membership, error) {
	var (
		m    domain.Membership
		role string
	)
	err := s.Scan(&m.ID, &m.UserID, &m.HouseholdID, &role, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Membership{}, err
	}
	m.Role = domain.Role(role)
	return m, nil
}
