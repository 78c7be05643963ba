package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want memory, postgres or sqlite)", c.Store.Driver)
	}

	if c.Contact.SubmitTimeout <= 0 {
		return fmt.Errorf("CONTACT_SUBMIT_TIMEOUT must be > 0 (got %s)", c.Contact.SubmitTimeout)
	}
	if c.Contact.MaxBodyBytes <= 0 {
		return fmt.Errorf("CONTACT_MAX_BODY_BYTES must be > 0 (got %d)", c.Contact.MaxBodyBytes)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be > 0 (got %s)", c.Server.ShutdownTimeout)
	}
	return nil
}
