package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Auth.PasswordCost < 4 || c.Auth.PasswordCost > 31 {
		return fmt.Errorf("auth.password_cost must be in [4, 31] (got %d)", c.Auth.PasswordCost)
	}

	if c.Server.LoginRateLimit <= 0 {
		return fmt.Errorf("server.login_rate_limit must be > 0 (got %d)", c.Server.LoginRateLimit)
	}

	if err := c.Alerts.validate(); err != nil {
		return fmt.Errorf("alerts: %w", err)
	}

	if c.NATS.Enabled() && strings.TrimSpace(c.NATS.DetectionsSubject) == "" {
		return fmt.Errorf("nats.detections_subject is required when nats.url is set")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a *AlertsConfig) validate() error {
	if a.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", a.MaxPageSize)
	}
	return nil
}
