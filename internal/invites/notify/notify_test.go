package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bosshelper/backend/internal/invites/notify"
	"github.com/stretchr/testify/require"
)

func TestResendSendEmail(t *testing.T) {
	var captured struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		Text    string   `json:"text"`
		HTML    string   `json:"html"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := notify.NewResendClient("re_test_key", "")
	c.BaseURL = srv.URL

	err := c.SendEmail(context.Background(), "helper@example.com", "You're invited", "code inside", "<p>code inside</p>")
	require.NoError(t, err)
	require.Equal(t, "Bearer re_test_key", auth)
	require.Equal(t, notify.DefaultEmailFrom, captured.From)
	require.Equal(t, []string{"helper@example.com"}, captured.To)
	require.Equal(t, "You're invited", captured.Subject)
	require.Equal(t, "<p>code inside</p>", captured.HTML)
}

func TestResendSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer srv.Close()

	c := notify.NewResendClient("re_test_key", "")
	c.BaseURL = srv.URL

	err := c.SendEmail(context.Background(), "nope", "subject", "text", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "422")
	require.Contains(t, err.Error(), "invalid to address")
}

func TestResendNotConfigured(t *testing.T) {
	c := notify.NewResendClient("", "")
	err := c.SendEmail(context.Background(), "helper@example.com", "s", "t", "")
	require.ErrorIs(t, err, notify.ErrNotConfigured)
}

func TestTwilioSendSMS(t *testing.T) {
	var form map[string][]string
	var user, pass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		var ok bool
		user, pass, ok = r.BasicAuth()
		require.True(t, ok)

		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := notify.NewTwilioClient("AC123", "token", "+15550100")
	c.BaseURL = srv.URL

	err := c.SendSMS(context.Background(), "+61412345678", "your code is 123456")
	require.NoError(t, err)
	require.Equal(t, "AC123", user)
	require.Equal(t, "token", pass)
	require.Equal(t, "+15550100", form["From"][0])
	require.Equal(t, "+61412345678", form["To"][0])
	require.Equal(t, "your code is 123456", form["Body"][0])
}

func TestTwilioSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"unverified number"}`))
	}))
	defer srv.Close()

	c := notify.NewTwilioClient("AC123", "token", "+15550100")
	c.BaseURL = srv.URL

	err := c.SendSMS(context.Background(), "+61412345678", "body")
	require.Error(t, err)
	require.Contains(t, err.Error(), "400")
}

func TestTwilioNotConfigured(t *testing.T) {
	c := notify.NewTwilioClient("", "", "")
	err := c.SendSMS(context.Background(), "+61412345678", "body")
	require.ErrorIs(t, err, notify.ErrNotConfigured)
}
