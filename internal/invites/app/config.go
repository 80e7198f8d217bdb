package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full environment surface of the invite service, parsed once
// at startup and passed in by injection.
type Config struct {
	Port                int           `env:"INVITES_PORT" envDefault:"8080"`
	DatabaseFile        string        `env:"INVITES_DATABASE_FILE" envDefault:"invites.db"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// Bearer tokens are verified against this shared secret and issuer.
	JWTSecret string `env:"INVITES_JWT_SECRET"`
	JWTIssuer string `env:"INVITES_JWT_ISSUER" envDefault:"bosshelper"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Email (Resend-compatible) provider. From defaults to the sandbox
	// sender, which only delivers to the account owner's address.
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendFrom    string `env:"RESEND_FROM"`
	ResendBaseURL string `env:"RESEND_BASE_URL"`

	// SMS (Twilio-compatible) provider.
	TwilioSID       string `env:"TWILIO_SID"`
	TwilioAuthToken string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFrom      string `env:"TWILIO_FROM"`
	TwilioBaseURL   string `env:"TWILIO_BASE_URL"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the invariants LoadConfig's defaults can't express.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("INVITES_JWT_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("INVITES_PORT %d is out of range", c.Port)
	}
	return nil
}
