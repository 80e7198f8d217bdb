package sqlite

import (
	"context"

	"github.com/bosshelper/backend/internal/invites/domain"
)

type householdsRepo struct {
	db dbtx
}

func (r *householdsRepo) CreateHousehold(ctx context.Context, h domain.Household) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO households (id, name, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.CreatedBy, now, now,
	)
	return mapConstraint(err)
}

func (r *householdsRepo) GetHouseholdByID(ctx context.Context, id string) (domain.Household, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_by, created_at, updated_at
		FROM households
		WHERE id = ?`,
		id,
	)

	var h domain.Household
	err := row.Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.Household{}, mapNotFound(err)
	}
	return h, nil
}

func (r *householdsRepo) ListHouseholdsForUser(ctx context.Context, userID string) ([]domain.Household, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.id, h.name, h.created_by, h.created_at, h.updated_at
		FROM households h
		JOIN memberships m ON m.household_id = h.id
		WHERE m.user_id = ?
		ORDER BY h.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Household
	for rows.Next() {
		var h domain.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
