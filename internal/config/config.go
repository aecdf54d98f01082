package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Storage backends understood by the storage package.
const (
	BackendLocal    = "local"
	BackendFirebase = "firebase"
)

// Paths contains directory and bind address configuration.
type Paths struct {
	LogDir    string `toml:"log_dir" env:"MEMORYLANE_LOG_DIR"`
	StaticDir string `toml:"static_dir" env:"MEMORYLANE_STATIC_DIR"`
	APIBind   string `toml:"api_bind" env:"MEMORYLANE_API_BIND"`
	APIToken  string `toml:"api_token" env:"MEMORYLANE_API_TOKEN"`
}

// Storage describes where album photos are listed from.
type Storage struct {
	Backend             string `toml:"backend" env:"MEMORYLANE_STORAGE_BACKEND"`
	Folder              string `toml:"folder" env:"MEMORYLANE_STORAGE_FOLDER"`
	Root                string `toml:"root" env:"MEMORYLANE_STORAGE_ROOT"`
	BaseURL             string `toml:"base_url" env:"MEMORYLANE_STORAGE_BASE_URL"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout" env:"MEMORYLANE_FETCH_TIMEOUT"`
	MaxConcurrency      int    `toml:"max_concurrency" env:"MEMORYLANE_STORAGE_MAX_CONCURRENCY"`
}

// Firebase contains Firebase Storage connection settings.
type Firebase struct {
	Bucket   string `toml:"bucket" env:"MEMORYLANE_FIREBASE_BUCKET"`
	Endpoint string `toml:"endpoint" env:"MEMORYLANE_FIREBASE_ENDPOINT"`
	APIKey   string `toml:"api_key" env:"MEMORYLANE_FIREBASE_API_KEY"`
}

// Album contains presentation settings.
type Album struct {
	Title          string `toml:"title" env:"MEMORYLANE_ALBUM_TITLE"`
	Customizations string `toml:"customizations" env:"MEMORYLANE_CUSTOMIZATIONS"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format" env:"MEMORYLANE_LOG_FORMAT"`
	Level         string `toml:"level" env:"MEMORYLANE_LOG_LEVEL"`
	RetentionDays int    `toml:"retention_days" env:"MEMORYLANE_LOG_RETENTION_DAYS"`
}

// Config encapsulates all configuration values for memorylane.
//
// Configuration sections by subsystem:
//   - Paths: log directory, frontend assets, and HTTP bind address
//   - Storage: photo source backend and folder
//   - Firebase: Firebase Storage bucket settings (firebase backend)
//   - Album: page title and customization table
//   - Logging: log format, level, and retention
type Config struct {
	Paths    Paths    `toml:"paths"`
	Storage  Storage  `toml:"storage"`
	Firebase Firebase `toml:"firebase"`
	Album    Album    `toml:"album"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/memorylane/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, "", false, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("memorylane.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for host operation.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

// FetchTimeout returns the storage listing deadline.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Storage.FetchTimeoutSeconds) * time.Second
}

// LockPath returns the single-instance lock file used by the HTTP host.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LogDir, "memorylane.lock")
}

// PhotoDir returns the local directory that holds the configured folder.
func (c *Config) PhotoDir() string {
	return filepath.Join(c.Storage.Root, filepath.FromSlash(c.Storage.Folder))
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	return writeSample(path, sampleConfig)
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	return writeSample(path, content)
}

func writeSample(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
