package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bosshelper/backend/internal/invites/domain"
	"github.com/bosshelper/backend/internal/invites/notify"
	"github.com/bosshelper/backend/internal/invites/service"
	"github.com/bosshelper/backend/internal/invites/store"
	"github.com/bosshelper/backend/internal/invites/store/drivers/sqlite"
	"github.com/bosshelper/backend/pkg/idx"
	"github.com/bosshelper/backend/pkg/otpx"
	"github.com/stretchr/testify/require"
)

type fakeEmailSender struct {
	calls   int
	to      string
	subject string
	text    string
	html    string
	err     error
}

func (f *fakeEmailSender) SendEmail(ctx context.Context, to, subject, text, html string) error {
	f.calls++
	f.to, f.subject, f.text, f.html = to, subject, text, html
	return f.err
}

type fakeSMSSender struct {
	calls int
	to    string
	body  string
	err   error
}

func (f *fakeSMSSender) SendSMS(ctx context.Context, to, body string) error {
	f.calls++
	f.to, f.body = to, body
	return f.err
}

type fixture struct {
	store     *sqlite.Store
	email     *fakeEmailSender
	sms       *fakeSMSSender
	svc       *service.InvitationService
	household domain.Household
}

// newFixture builds an in-memory store with a household whose boss is
// "boss-1" and helper is "helper-1".
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	h := domain.Household{ID: idx.New().String(), Name: "Smith Family", CreatedBy: "boss-1"}
	require.NoError(t, s.Households().CreateHousehold(ctx, h))
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		ID: idx.New().String(), UserID: "boss-1", HouseholdID: h.ID, Role: domain.RoleBoss,
	}))
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		ID: idx.New().String(), UserID: "helper-1", HouseholdID: h.ID, Role: domain.RoleHelper,
	}))

	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	return &fixture{
		store:     s,
		email:     email,
		sms:       sms,
		svc:       &service.InvitationService{Store: s, Email: email, SMS: sms},
		household: h,
	}
}

func emailParams(householdID string) service.SendInvitationParams {
	return service.SendInvitationParams{
		HouseholdID: householdID,
		Contact:     "new.helper@example.com",
		ContactKind: domain.ContactEmail,
	}
}

var codeInMessage = regexp.MustCompile(`\b(\d{6})\b`)

func TestSendInvitationEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.svc.SendInvitation(ctx, "boss-1", emailParams(f.household.ID))
	require.NoError(t, err)
	require.NotEmpty(t, inv.ID)
	require.Equal(t, domain.StatusPending, inv.Status)
	require.Equal(t, domain.RoleHelper, inv.Role, "role defaults to helper")

	// The stored row carries only the hash of the delivered code.
	require.Equal(t, 1, f.email.calls)
	require.Equal(t, "new.helper@example.com", f.email.to)
	require.NotEmpty(t, f.email.subject)
	require.Contains(t, f.email.text, "Do not share this code")
	require.Contains(t, f.email.text, "15 minutes")
	require.NotEmpty(t, f.email.html)

	match := codeInMessage.FindString(f.email.text)
	require.NotEmpty(t, match, "message must carry the six-digit code")
	require.Equal(t, otpx.Fingerprint(match), inv.CodeHash)
	require.NotContains(t, inv.CodeHash, match)

	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.CodeHash, stored.CodeHash)
	require.Equal(t, "boss-1", stored.InvitedBy)
	require.Equal(t, 0, f.sms.calls)
}

func TestSendInvitationSMS(t *testing.T) {
	f := newFixture(t)

	p := service.SendInvitationParams{
		HouseholdID: f.household.ID,
		Contact:     "+61412345678",
		ContactKind: domain.ContactPhone,
		Role:        domain.RoleBoss,
	}
	inv, err := f.svc.SendInvitation(context.Background(), "boss-1", p)
	require.NoError(t, err)
	require.Equal(t, domain.RoleBoss, inv.Role)

	require.Equal(t, 1, f.sms.calls)
	require.Equal(t, 0, f.email.calls)
	require.Equal(t, "+61412345678", f.sms.to)
	require.Contains(t, f.sms.body, "Do not share this code")
}

func TestSendInvitationAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("helper is forbidden", func(t *testing.T) {
		_, err := f.svc.SendInvitation(ctx, "helper-1", emailParams(f.household.ID))
		require.ErrorIs(t, err, service.ErrNotBoss)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		_, err := f.svc.SendInvitation(ctx, "stranger", emailParams(f.household.ID))
		require.ErrorIs(t, err, service.ErrNotBoss)
	})

	t.Run("unknown household", func(t *testing.T) {
		_, err := f.svc.SendInvitation(ctx, "boss-1", emailParams("nope"))
		require.ErrorIs(t, err, service.ErrHouseholdNotFound)
	})

	// No rows were created and nothing was dispatched.
	list, err := f.store.Invitations().ListInvitationsForHousehold(ctx, f.household.ID)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Equal(t, 0, f.email.calls)
	require.Equal(t, 0, f.sms.calls)
}

func TestSendInvitationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*service.SendInvitationParams)
		want   error
	}{
		{"empty household", func(p *service.SendInvitationParams) { p.HouseholdID = "" }, service.ErrInvalidRequest},
		{"empty contact", func(p *service.SendInvitationParams) { p.Contact = "" }, service.ErrInvalidRequest},
		{"missing kind", func(p *service.SendInvitationParams) { p.ContactKind = "" }, service.ErrInvalidRequest},
		{"unknown kind", func(p *service.SendInvitationParams) { p.ContactKind = "carrier-pigeon" }, service.ErrInvalidRequest},
		{"bad role", func(p *service.SendInvitationParams) { p.Role = "owner" }, service.ErrInvalidRole},
		{"email without at", func(p *service.SendInvitationParams) { p.Contact = "helper.example.com" }, service.ErrInvalidContact},
		{"email without dot", func(p *service.SendInvitationParams) { p.Contact = "helper@example" }, service.ErrInvalidContact},
		{"phone too short", func(p *service.SendInvitationParams) {
			p.Contact = "+1234"
			p.ContactKind = domain.ContactPhone
		}, service.ErrInvalidContact},
		{"phone leading zero", func(p *service.SendInvitationParams) {
			p.Contact = "0412345678"
			p.ContactKind = domain.ContactPhone
		}, service.ErrInvalidContact},
		{"phone with letters", func(p *service.SendInvitationParams) {
			p.Contact = "+6141234abcd"
			p.ContactKind = domain.ContactPhone
		}, service.ErrInvalidContact},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := emailParams(f.household.ID)
			tc.mutate(&p)

			_, err := f.svc.SendInvitation(ctx, "boss-1", p)
			require.ErrorIs(t, err, tc.want)
		})
	}

	list, err := f.store.Invitations().ListInvitationsForHousehold(ctx, f.household.ID)
	require.NoError(t, err)
	require.Empty(t, list, "validation failures must not create rows")
}

func TestSendInvitationTTLClamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	issue := func(t *testing.T, ttl *int) time.Duration {
		t.Helper()
		p := emailParams(f.household.ID)
		p.TTLMinutes = ttl

		before := time.Now().UTC()
		inv, err := f.svc.SendInvitation(ctx, "boss-1", p)
		require.NoError(t, err)
		return inv.ExpiresAt.Sub(before).Round(time.Minute)
	}

	ptr := func(v int) *int { return &v }

	require.Equal(t, 15*time.Minute, issue(t, nil), "absent ttl defaults to 15")
	require.Equal(t, 1*time.Minute, issue(t, ptr(0)), "ttl below range clamps to 1")
	require.Equal(t, 60*time.Minute, issue(t, ptr(120)), "ttl above range clamps to 60")
	require.Equal(t, 30*time.Minute, issue(t, ptr(30)))
}

func TestSendInvitationRevokesPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.SendInvitation(ctx, "boss-1", emailParams(f.household.ID))
	require.NoError(t, err)

	second, err := f.svc.SendInvitation(ctx, "boss-1", emailParams(f.household.ID))
	require.NoError(t, err)

	got, err := f.store.Invitations().GetInvitationByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRevoked, got.Status)

	got, err = f.store.Invitations().GetInvitationByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)

	// A code for a different contact is untouched.
	p := emailParams(f.household.ID)
	p.Contact = "other@example.com"
	third, err := f.svc.SendInvitation(ctx, "boss-1", p)
	require.NoError(t, err)

	got, err = f.store.Invitations().GetInvitationByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)

	got, err = f.store.Invitations().GetInvitationByID(ctx, third.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
}

func TestSendInvitationProviderNotConfigured(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.email.err = notify.ErrNotConfigured

	_, err := f.svc.SendInvitation(ctx, "boss-1", emailParams(f.household.ID))
	require.ErrorIs(t, err, notify.ErrNotConfigured)

	// The row was committed before dispatch and stays pending.
	list, err := f.store.Invitations().ListInvitationsForHousehold(ctx, f.household.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.StatusPending, list[0].Status)
}

func TestSendInvitationDispatchFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sms.err = errors.New("twilio returned 400")

	p := service.SendInvitationParams{
		HouseholdID: f.household.ID,
		Contact:     "+61412345678",
		ContactKind: domain.ContactPhone,
	}
	_, err := f.svc.SendInvitation(ctx, "boss-1", p)
	require.ErrorIs(t, err, service.ErrDispatchFailed)

	list, err := f.store.Invitations().ListInvitationsForHousehold(ctx, f.household.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.StatusPending, list[0].Status)
}

func issueAndCaptureCode(t *testing.T, f *fixture, contact string) (domain.Invitation, string) {
	t.Helper()

	p := emailParams(f.household.ID)
	p.Contact = contact
	inv, err := f.svc.SendInvitation(context.Background(), "boss-1", p)
	require.NoError(t, err)

	code := codeInMessage.FindString(f.email.text)
	require.NotEmpty(t, code)
	return inv, code
}

func TestRedeemInvitation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, code := issueAndCaptureCode(t, f, "new.helper@example.com")

	got, err := f.svc.RedeemInvitation(ctx, "user-9", "new.helper@example.com", code)
	require.NoError(t, err)
	require.Equal(t, inv.ID, got.ID)
	require.Equal(t, f.household.ID, got.HouseholdID)
	require.Equal(t, domain.RoleHelper, got.Role)

	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConsumed, stored.Status)
	require.Equal(t, "user-9", stored.ConsumedBy)

	m, err := f.store.Memberships().GetMembership(ctx, "user-9", f.household.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleHelper, m.Role)

	// The same code cannot be redeemed twice.
	_, err = f.svc.RedeemInvitation(ctx, "user-10", "new.helper@example.com", code)
	require.ErrorIs(t, err, service.ErrInvitationNotFound)
}

func TestRedeemInvitationWrongCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, code := issueAndCaptureCode(t, f, "new.helper@example.com")

	wrong := "123456"
	if wrong == code {
		wrong = "123457"
	}
	_, err := f.svc.RedeemInvitation(ctx, "user-9", "new.helper@example.com", wrong)
	require.ErrorIs(t, err, service.ErrInvitationNotFound)

	// Nothing was mutated.
	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)

	_, err = f.store.Memberships().GetMembership(ctx, "user-9", f.household.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedeemInvitationExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Insert an already-expired pending row directly.
	code := "654321"
	inv := domain.Invitation{
		ID:          idx.New().String(),
		HouseholdID: f.household.ID,
		InvitedBy:   "boss-1",
		Contact:     "late@example.com",
		ContactKind: domain.ContactEmail,
		Role:        domain.RoleHelper,
		CodeHash:    otpx.Fingerprint(code),
		ExpiresAt:   time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, f.store.Invitations().CreateInvitation(ctx, inv))

	_, err := f.svc.RedeemInvitation(ctx, "user-9", "late@example.com", code)
	require.ErrorIs(t, err, service.ErrInvitationNotFound)

	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status, "expired rows are not mutated on failed redemption")
}

func TestRedeemInvitationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RedeemInvitation(ctx, "user-9", "", "123456")
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = f.svc.RedeemInvitation(ctx, "user-9", "a@example.com", "12345")
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = f.svc.RedeemInvitation(ctx, "user-9", "a@example.com", "12345a")
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestRedeemInvitationExistingMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, code := issueAndCaptureCode(t, f, "new.helper@example.com")

	// The redeemer already belongs to the household.
	require.NoError(t, f.store.Memberships().CreateMembership(ctx, domain.Membership{
		ID: idx.New().String(), UserID: "user-9", HouseholdID: f.household.ID, Role: domain.RoleHelper,
	}))

	_, err := f.svc.RedeemInvitation(ctx, "user-9", "new.helper@example.com", code)
	require.NoError(t, err, "redemption tolerates a pre-existing membership")
}
