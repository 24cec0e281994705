package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSession()
	c.normalizeCatalog()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeSession() {
	if c.Session.SigningKey == "" {
		if value, ok := os.LookupEnv("DISCBIN_SESSION_KEY"); ok {
			c.Session.SigningKey = value
		}
	}
	c.Session.Issuer = strings.TrimSpace(c.Session.Issuer)
	if c.Session.Issuer == "" {
		c.Session.Issuer = defaultIssuer
	}
	if c.Session.RememberDays == 0 {
		c.Session.RememberDays = defaultRememberDays
	}
}

func (c *Config) normalizeCatalog() {
	c.Catalog.Currency = strings.ToUpper(strings.TrimSpace(c.Catalog.Currency))
	if c.Catalog.Currency == "" {
		c.Catalog.Currency = defaultCurrency
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
