package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Database.TxAttempts < 1 {
		return fmt.Errorf("database.tx_attempts must be >= 1 (got %d)", c.Database.TxAttempts)
	}

	if err := c.Gifts.validate(); err != nil {
		return fmt.Errorf("gifts: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			return fmt.Errorf("rate_limit.requests must be > 0 (got %d)", c.RateLimit.Requests)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be > 0 (got %s)", c.RateLimit.Window)
		}
	}

	return nil
}

func (g *GiftsConfig) validate() error {
	if g.MaxMonths < 1 {
		return fmt.Errorf("max_months must be >= 1 (got %d)", g.MaxMonths)
	}
	if g.DefaultMonths < 1 || g.DefaultMonths > g.MaxMonths {
		return fmt.Errorf("default_months must be in [1, %d] (got %d)", g.MaxMonths, g.DefaultMonths)
	}
	if g.CatalogCacheTTL < 0 {
		return fmt.Errorf("catalog_cache_ttl must be >= 0 (got %s)", g.CatalogCacheTTL)
	}
	if g.OwnerEmailDomain == "" || strings.ContainsAny(g.OwnerEmailDomain, "@ \t") {
		return fmt.Errorf("owner_email_domain must be a bare domain (got %q)", g.OwnerEmailDomain)
	}
	if g.MaxPhotosPerPet < 1 {
		return fmt.Errorf("max_photos_per_pet must be >= 1 (got %d)", g.MaxPhotosPerPet)
	}
	if g.MaxTopUp < 1 {
		return fmt.Errorf("max_top_up must be >= 1 (got %d)", g.MaxTopUp)
	}
	return nil
}
