package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSession(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSession() error {
	if c.Session.SigningKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/discbin/config.toml"
		}
		return fmt.Errorf("session.signing_key is required. Set DISCBIN_SESSION_KEY env var or edit %s (create with 'discbin config init')", defaultPath)
	}
	if len(c.Session.SigningKey) < 32 {
		return errors.New("session.signing_key must be at least 32 characters")
	}
	if c.Session.RememberDays < 1 {
		return errors.New("session.remember_days must be at least 1")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if len(c.Catalog.Currency) != 3 {
		return fmt.Errorf("catalog.currency: %q is not a three-letter currency code", c.Catalog.Currency)
	}
	for _, r := range c.Catalog.Currency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("catalog.currency: %q is not a three-letter currency code", c.Catalog.Currency)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
