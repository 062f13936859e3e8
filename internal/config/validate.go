package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateMutation(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateStore() error {
	switch c.Store.Backend {
	case "http":
		if c.Store.BaseURL == "" {
			return errors.New("store.base_url is required for the http backend")
		}
		parsed, err := url.Parse(c.Store.BaseURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("store.base_url: %q is not a valid http(s) URL", c.Store.BaseURL)
		}
		if c.Store.RequestTimeout <= 0 {
			return errors.New("store.request_timeout must be positive")
		}
	case "sqlite":
		if c.Store.DBPath == "" {
			return errors.New("store.db_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("store.backend: unsupported value %q", c.Store.Backend)
	}
	return nil
}

func (c *Config) validateMutation() error {
	if c.Mutation.ReassignRetryAttempts < 1 {
		return errors.New("mutation.reassign_retry_attempts must be at least 1")
	}
	if c.Mutation.RetryBaseDelayMS < 0 {
		return errors.New("mutation.retry_base_delay_ms must not be negative")
	}
	if c.Mutation.RetryMaxDelayMS < c.Mutation.RetryBaseDelayMS {
		return errors.New("mutation.retry_max_delay_ms must not be below retry_base_delay_ms")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
