package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
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
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if c.MaxPageLimit <= 0 {
		return fmt.Errorf("max_page_limit must be > 0 (got %d)", c.MaxPageLimit)
	}
	if c.DefaultPageLimit <= 0 || c.DefaultPageLimit > c.MaxPageLimit {
		return fmt.Errorf("default_page_limit must be in [1, %d] (got %d)", c.MaxPageLimit, c.DefaultPageLimit)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	switch r.Backend {
	case RateLimitBackendMemory:
	case RateLimitBackendRedis:
		if r.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("backend must be %q or %q (got %q)", RateLimitBackendMemory, RateLimitBackendRedis, r.Backend)
	}
	if r.RegisterPerMinute <= 0 {
		return fmt.Errorf("register_per_minute must be > 0 (got %d)", r.RegisterPerMinute)
	}
	if r.LoginPerMinute <= 0 {
		return fmt.Errorf("login_per_minute must be > 0 (got %d)", r.LoginPerMinute)
	}
	return nil
}
