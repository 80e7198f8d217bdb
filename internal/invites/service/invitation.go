package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/bosshelper/backend/internal/invites/domain"
	"github.com/bosshelper/backend/internal/invites/notify"
	"github.com/bosshelper/backend/internal/invites/store"
	"github.com/bosshelper/backend/pkg/idx"
	"github.com/bosshelper/backend/pkg/otpx"
	"github.com/bosshelper/backend/pkg/slogx"
)

var (
	ErrInvalidRequest     = errors.New("invalid invitation request")
	ErrInvalidContact     = errors.New("contact does not match the requested contact kind")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotBoss            = errors.New("caller is not a boss of the household")
	ErrHouseholdNotFound  = errors.New("household not found")
	ErrInvitationNotFound = errors.New("invitation not found or expired")
	ErrDispatchFailed     = errors.New("invitation could not be delivered")
)

const (
	// TTL bounds for the one-time code, in minutes.
	DefaultTTLMinutes = 15
	MinTTLMinutes     = 1
	MaxTTLMinutes     = 60
)

var (
	// Single @, at least one dot in the domain part.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// E.164-like: optional +, first digit 1-9, 7 to 16 digits total.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,15}$`)
)

type InvitationService struct {
	Store store.Store
	Email notify.EmailSender
	SMS   notify.SMSSender
}

// SendInvitationParams is the issuance request after JSON decoding. TTLMinutes
// is a pointer so an absent field can be told apart from an explicit zero.
type SendInvitationParams struct {
	HouseholdID string
	Role        domain.Role
	Contact     string
	ContactKind domain.ContactKind
	TTLMinutes  *int
}

// SendInvitation mints a one-time code for a household invitation, persists
// its hash, and delivers the plaintext code over the requested channel. The
// plaintext code never leaves this method except inside the outbound message.
func (s *InvitationService) SendInvitation(ctx context.Context, callerID string, p SendInvitationParams) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the request before any side effect.
	if p.Role == "" {
		p.Role = domain.RoleHelper
	}
	if err := validateSendParams(p); err != nil {
		log.Warn("invitation request rejected",
			slog.String("household_id", p.HouseholdID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	// 2. Authorize: only household bosses may invite.
	membership, err := s.Store.Memberships().GetMembership(ctx, callerID, p.HouseholdID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Confirm the household exists so strangers get the same
			// 403 as helpers, not a membership oracle.
			if _, herr := s.Store.Households().GetHouseholdByID(ctx, p.HouseholdID); herr != nil {
				if errors.Is(herr, store.ErrNotFound) {
					return domain.Invitation{}, ErrHouseholdNotFound
				}
				return domain.Invitation{}, herr
			}
			return domain.Invitation{}, ErrNotBoss
		}
		log.Error("failed to fetch membership", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if membership.Role != domain.RoleBoss {
		log.Warn("non-boss attempted to invite",
			slog.String("household_id", p.HouseholdID),
			slog.String("caller_role", string(membership.Role)),
		)
		return domain.Invitation{}, ErrNotBoss
	}

	// 3. Mint the code and compute its expiry.
	code, err := otpx.NewCode()
	if err != nil {
		log.Error("failed to generate invitation code", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	ttl := clampTTL(p.TTLMinutes)

	invitation := domain.Invitation{
		ID:          idx.New().String(),
		HouseholdID: p.HouseholdID,
		InvitedBy:   callerID,
		Contact:     p.Contact,
		ContactKind: p.ContactKind,
		Role:        p.Role,
		CodeHash:    otpx.Fingerprint(code),
		Status:      domain.StatusPending,
		ExpiresAt:   time.Now().UTC().Add(time.Duration(ttl) * time.Minute),
	}

	// 4. Revoke any previous pending invitation for this pair and insert
	// the new one in a single transaction, so at most one pending row per
	// (household, contact) ever exists.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Invitations().RevokePendingInvitations(ctx, p.HouseholdID, p.Contact); err != nil {
			return err
		}
		return tx.Invitations().CreateInvitation(ctx, invitation)
	})
	if err != nil {
		log.Error("failed to persist invitation",
			slog.String("invitation_id", invitation.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	// 5. Dispatch after commit. A delivery failure leaves the row pending:
	// the code exists, the caller just learns nothing was sent.
	if err := s.dispatch(ctx, invitation, code, ttl); err != nil {
		log.Error("failed to dispatch invitation",
			slog.String("invitation_id", invitation.ID),
			slog.String("contact_kind", string(invitation.ContactKind)),
			slog.Any("error", err),
		)
		if errors.Is(err, notify.ErrNotConfigured) {
			return domain.Invitation{}, err
		}
		return domain.Invitation{}, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	log.Info("invitation sent",
		slog.String("invitation_id", invitation.ID),
		slog.String("household_id", invitation.HouseholdID),
		slog.String("contact_kind", string(invitation.ContactKind)),
		slog.String("role", string(invitation.Role)),
		slog.Time("expires_at", invitation.ExpiresAt),
	)

	return invitation, nil
}

// RedeemInvitation consumes a pending invitation matching (contact, code) and
// grants the caller the invitation's role in its household. A wrong code and
// an expired code produce the same error so redemption can't be used as an
// oracle.
func (s *InvitationService) RedeemInvitation(ctx context.Context, callerID, contact, code string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if contact == "" || !otpx.ValidFormat(code) {
		return domain.Invitation{}, ErrInvalidRequest
	}

	invitation, err := s.Store.Invitations().GetPendingInvitationByContactAndHash(ctx, contact, otpx.Fingerprint(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("redemption attempted with unknown contact/code pair")
			return domain.Invitation{}, ErrInvitationNotFound
		}
		log.Error("failed to look up invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	if invitation.Expired(time.Now().UTC()) {
		log.Warn("redemption attempted with expired invitation",
			slog.String("invitation_id", invitation.ID),
		)
		return domain.Invitation{}, ErrInvitationNotFound
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().MarkInvitationConsumed(ctx, invitation.ID, callerID); err != nil {
			return err
		}

		err := tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:          idx.New().String(),
			UserID:      callerID,
			HouseholdID: invitation.HouseholdID,
			Role:        invitation.Role,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			// Already a member; consuming the invitation is still fine.
			return nil
		}
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race with another redemption of the same row.
			return domain.Invitation{}, ErrInvitationNotFound
		}
		log.Error("failed to redeem invitation",
			slog.String("invitation_id", invitation.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation redeemed",
		slog.String("invitation_id", invitation.ID),
		slog.String("household_id", invitation.HouseholdID),
		slog.String("role", string(invitation.Role)),
	)

	invitation.Status = domain.StatusConsumed
	invitation.ConsumedBy = callerID
	return invitation, nil
}

func validateSendParams(p SendInvitationParams) error {
	if p.HouseholdID == "" || p.Contact == "" || p.ContactKind == "" {
		return ErrInvalidRequest
	}
	if !p.Role.Valid() {
		return ErrInvalidRole
	}

	switch p.ContactKind {
	case domain.ContactEmail:
		if !emailPattern.MatchString(p.Contact) {
			return ErrInvalidContact
		}
	case domain.ContactPhone:
		if !phonePattern.MatchString(p.Contact) {
			return ErrInvalidContact
		}
	default:
		return ErrInvalidRequest
	}

	return nil
}

func clampTTL(ttl *int) int {
	if ttl == nil {
		return DefaultTTLMinutes
	}
	return min(max(*ttl, MinTTLMinutes), MaxTTLMinutes)
}

func (s *InvitationService) dispatch(ctx context.Context, inv domain.Invitation, code string, ttlMinutes int) error {
	text := fmt.Sprintf(
		"Your Boss Helper code is %s. It expires in %d minutes.\nEnter this code in the app to join the household. Do not share this code.",
		code, ttlMinutes,
	)

	switch inv.ContactKind {
	case domain.ContactEmail:
		subject := "Your Boss Helper invitation code"
		html := fmt.Sprintf(
			"<p>Your Boss Helper code is <strong>%s</strong>. It expires in %d minutes.</p><p>Enter this code in the app to join the household. Do not share this code.</p>",
			code, ttlMinutes,
		)
		return s.Email.SendEmail(ctx, inv.Contact, subject, text, html)
	case domain.ContactPhone:
		return s.SMS.SendSMS(ctx, inv.Contact, text)
	default:
		return fmt.Errorf("unsupported contact kind %q", inv.ContactKind)
	}
}
