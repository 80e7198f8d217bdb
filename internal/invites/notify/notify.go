// Package notify delivers invitation codes to invitees over email (Resend)
// and SMS (Twilio). Providers are behind small interfaces so the service
// layer and tests don't care which vendor is wired in.
package notify

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means the provider credentials are missing. Callers
	// surface this after the invitation row is persisted, so issuance is
	// recorded even when delivery cannot happen.
	ErrNotConfigured = errors.New("notify: provider not configured")
)

// EmailSender delivers a message to an email address. Both a plain-text and
// an HTML body are supplied; providers send whichever they support.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, text, html string) error
}

// SMSSender delivers a message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}
