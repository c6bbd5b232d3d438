package config

import (
	"fmt"
	"strings"
)

// MaxImportItems is the hard ceiling for a single catalog import payload.
const MaxImportItems = 10000

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if !c.Denylist.InMemory && strings.TrimSpace(c.Denylist.Path) == "" {
		return fmt.Errorf("denylist.path is required unless denylist.in_memory is set")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.AuthRequestsPerMinute <= 0 || c.RateLimit.LegacyRequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit budgets must be > 0 when rate limiting is enabled")
		}
	}

	if c.Push.SendBuffer <= 0 {
		return fmt.Errorf("push.send_buffer must be > 0 (got %d)", c.Push.SendBuffer)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if c.ImportMaxItems < 1 || c.ImportMaxItems > MaxImportItems {
		return fmt.Errorf("import_max_items must be in [1, %d] (got %d)", MaxImportItems, c.ImportMaxItems)
	}
	if c.ImportChunkSize < 1 || c.ImportChunkSize > c.ImportMaxItems {
		return fmt.Errorf("import_chunk_size must be in [1, import_max_items] (got %d)", c.ImportChunkSize)
	}
	if c.SearchMinQuery < 1 {
		return fmt.Errorf("search_min_query must be >= 1 (got %d)", c.SearchMinQuery)
	}
	return nil
}
