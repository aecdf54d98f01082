package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		return fmt.Errorf("paths.api_bind: %w", err)
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendLocal:
		if strings.TrimSpace(c.Storage.Root) == "" {
			return errors.New("storage.root must be set for the local backend")
		}
	case BackendFirebase:
		if c.Firebase.Bucket == "" {
			return errors.New("firebase.bucket must be set for the firebase backend")
		}
		if !strings.HasPrefix(c.Firebase.Endpoint, "http://") && !strings.HasPrefix(c.Firebase.Endpoint, "https://") {
			return fmt.Errorf("firebase.endpoint: unsupported scheme in %q", c.Firebase.Endpoint)
		}
	default:
		return fmt.Errorf("storage.backend: unsupported value %q", c.Storage.Backend)
	}
	if strings.Contains(c.Storage.Folder, "..") {
		return fmt.Errorf("storage.folder: %q must not contain '..'", c.Storage.Folder)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
