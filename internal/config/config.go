// Package config loads run settings from the environment (and an optional
// .env file). All required settings are validated up front; a missing value
// aborts the run before any network activity.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the externally supplied run settings.
type Config struct {
	ClaimURL        string  `envconfig:"CLAIM_URL" required:"true"`
	ThrottleRate    float64 `envconfig:"THROTTLE_RATE" required:"true"`
	SpreadsheetID   string  `envconfig:"SPREADSHEET_ID" required:"true"`
	CredentialsFile string  `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`
	CooldownSeconds float64 `envconfig:"COOLDOWN_SECONDS" default:"10"`
	LogFile         string  `envconfig:"LOG_FILE" default:"bc-mercantile.log"`
}

// Load reads settings from a .env file (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.ThrottleRate < 0 {
		return nil, fmt.Errorf("THROTTLE_RATE must not be negative, got %v", cfg.ThrottleRate)
	}
	if _, err := cfg.ClaimID(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ClaimID extracts the home claim entity id from the configured claim URL.
func (c *Config) ClaimID() (string, error) {
	_, id, found := strings.Cut(c.ClaimURL, "claims/")
	if !found || id == "" {
		return "", fmt.Errorf("CLAIM_URL %q does not contain a claim id (expected .../claims/<id>)", c.ClaimURL)
	}
	// Tolerate trailing path segments or query strings after the id.
	if i := strings.IndexAny(id, "/?"); i >= 0 {
		id = id[:i]
	}
	return id, nil
}

// Throttle returns the configured inter-request delay.
func (c *Config) Throttle() time.Duration {
	return time.Duration(c.ThrottleRate * float64(time.Second))
}

// Cooldown returns the pause applied after a failed per-entity fetch.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds * float64(time.Second))
}
