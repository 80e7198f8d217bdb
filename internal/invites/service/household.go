package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bosshelper/backend/internal/invites/domain"
	"github.com/bosshelper/backend/internal/invites/store"
	"github.com/bosshelper/backend/pkg/idx"
	"github.com/bosshelper/backend/pkg/slogx"
)

var ErrInvalidHouseholdName = errors.New("household name must not be empty")

type HouseholdService struct {
	Store store.Store
}

// HouseholdWithRole pairs a household with the caller's role in it.
type HouseholdWithRole struct {
	Household domain.Household
	Role      domain.Role
}

// CreateHousehold inserts the household and makes the creator its boss, in
// one transaction.
func (s *HouseholdService) CreateHousehold(ctx context.Context, callerID, name string) (domain.Household, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Household{}, ErrInvalidHouseholdName
	}

	household := domain.Household{
		ID:        idx.New().String(),
		Name:      name,
		CreatedBy: callerID,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Households().CreateHousehold(ctx, household); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:          idx.New().String(),
			UserID:      callerID,
			HouseholdID: household.ID,
			Role:        domain.RoleBoss,
		})
	})
	if err != nil {
		log.Error("failed to create household", slog.Any("error", err))
		return domain.Household{}, err
	}

	log.Info("household created",
		slog.String("household_id", household.ID),
		slog.String("created_by", callerID),
	)

	return household, nil
}

// ListHouseholds returns every household the caller belongs to along with
// the caller's role.
func (s *HouseholdService) ListHouseholds(ctx context.Context, callerID string) ([]HouseholdWithRole, error) {
	households, err := s.Store.Households().ListHouseholdsForUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	out := make([]HouseholdWithRole, 0, len(households))
	for _, h := range households {
		m, err := s.Store.Memberships().GetMembership(ctx, callerID, h.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, HouseholdWithRole{Household: h, Role: m.Role})
	}
	return out, nil
}
