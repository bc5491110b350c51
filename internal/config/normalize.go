package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeEncoder(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeEncoder() error {
	binary := strings.TrimSpace(c.Encoder.Binary)
	// Bare names are left for PATH lookup; anything path-like is made absolute.
	if strings.HasPrefix(binary, "~") || strings.ContainsAny(binary, `/\`) {
		expanded, err := expandPath(binary)
		if err != nil {
			return fmt.Errorf("encoder.binary: %w", err)
		}
		binary = expanded
	}
	c.Encoder.Binary = binary
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	dir := strings.TrimSpace(c.Logging.Dir)
	if dir == "" {
		c.Logging.Dir = ""
		return nil
	}
	expanded, err := expandPath(dir)
	if err != nil {
		if dir == defaultLogDir {
			// No home directory: the built-in log location is dropped.
			c.Logging.Dir = ""
			return nil
		}
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = expanded
	return nil
}
