package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeStorage(); err != nil {
		return err
	}
	c.normalizeFirebase()
	if err := c.normalizeAlbum(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.StaticDir = strings.TrimSpace(c.Paths.StaticDir)
	if c.Paths.StaticDir, err = expandPath(c.Paths.StaticDir); err != nil {
		return fmt.Errorf("paths.static_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	return nil
}

func (c *Config) normalizeStorage() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultStorageBackend
	}
	c.Storage.Folder = strings.Trim(strings.TrimSpace(c.Storage.Folder), "/")
	if c.Storage.Folder == "" {
		c.Storage.Folder = defaultStorageFolder
	}
	var err error
	if strings.TrimSpace(c.Storage.Root) == "" {
		c.Storage.Root = defaultStorageRoot
	}
	if c.Storage.Root, err = expandPath(c.Storage.Root); err != nil {
		return fmt.Errorf("storage.root: %w", err)
	}
	c.Storage.BaseURL = strings.TrimRight(strings.TrimSpace(c.Storage.BaseURL), "/")
	if c.Storage.BaseURL == "" {
		c.Storage.BaseURL = defaultStorageBaseURL
	}
	if c.Storage.FetchTimeoutSeconds <= 0 {
		c.Storage.FetchTimeoutSeconds = defaultFetchTimeoutSeconds
	}
	if c.Storage.MaxConcurrency <= 0 {
		c.Storage.MaxConcurrency = defaultStorageMaxConcurrency
	}
	return nil
}

func (c *Config) normalizeFirebase() {
	c.Firebase.Bucket = strings.TrimSpace(c.Firebase.Bucket)
	c.Firebase.Bucket = strings.TrimPrefix(c.Firebase.Bucket, "gs://")
	c.Firebase.Endpoint = strings.TrimRight(strings.TrimSpace(c.Firebase.Endpoint), "/")
	if c.Firebase.Endpoint == "" {
		c.Firebase.Endpoint = defaultFirebaseEndpoint
	}
	c.Firebase.APIKey = strings.TrimSpace(c.Firebase.APIKey)
}

func (c *Config) normalizeAlbum() error {
	c.Album.Title = strings.TrimSpace(c.Album.Title)
	if c.Album.Title == "" {
		c.Album.Title = defaultAlbumTitle
	}
	var err error
	c.Album.Customizations = strings.TrimSpace(c.Album.Customizations)
	if c.Album.Customizations, err = expandPath(c.Album.Customizations); err != nil {
		return fmt.Errorf("album.customizations: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
