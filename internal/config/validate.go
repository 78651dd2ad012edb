package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateRequests(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.MainRef == c.Source.DevRef {
		return fmt.Errorf("source.main_ref and source.dev_ref are both %q; the catalogue needs two distinct refs", c.Source.MainRef)
	}
	return nil
}

func (c *Config) validateRequests() error {
	if c.Requests.Repo == "" {
		return nil
	}
	parts := strings.Split(c.Requests.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("requests.repo must be an owner/name slug, got %q", c.Requests.Repo)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.SummaryWords < 0 {
		return errors.New("output.summary_words must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
