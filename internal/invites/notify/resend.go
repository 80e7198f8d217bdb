package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	resendDefaultBaseURL = "https://api.resend.com"

	// DefaultEmailFrom is Resend's sandbox sender. It only delivers to the
	// account owner's own address, which is the safe default until a
	// custom domain is verified.
	DefaultEmailFrom = "Boss Helper <onboarding@resend.dev>"
)

// ResendClient sends email through the Resend HTTP API.
type ResendClient struct {
	APIKey  string
	From    string
	BaseURL string
	HTTP    *http.Client
}

// NewResendClient builds a client. An empty apiKey yields a client whose
// SendEmail returns ErrNotConfigured.
func NewResendClient(apiKey, from string) *ResendClient {
	if from == "" {
		from = DefaultEmailFrom
	}
	return &ResendClient{
		APIKey:  apiKey,
		From:    from,
		BaseURL: resendDefaultBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html,omitempty"`
}

func (c *ResendClient) SendEmail(ctx context.Context, to, subject, text, html string) error {
	if c == nil || c.APIKey == "" {
		return fmt.Errorf("%w: RESEND_API_KEY is not set", ErrNotConfigured)
	}

	body, err := json.Marshal(resendEmailRequest{
		From:    c.From,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("notify: encode resend request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("notify: resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("notify: resend returned %d: %s", resp.StatusCode, detail)
	}

	return nil
}
