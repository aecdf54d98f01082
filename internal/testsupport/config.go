package testsupport

import (
	"path/filepath"
	"testing"

	"memorylane/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The local backend points at {base}/photos/memories.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.APIBind = "127.0.0.1:0"
	cfgVal.Storage.Root = filepath.Join(base, "photos")
	cfgVal.Storage.FetchTimeoutSeconds = 5
	cfgVal.Album.Customizations = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFirebase switches the config to the firebase backend at endpoint.
func WithFirebase(endpoint, bucket string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.Backend = config.BackendFirebase
		b.cfg.Firebase.Endpoint = endpoint
		b.cfg.Firebase.Bucket = bucket
	}
}

// WithAPIToken sets the bearer token required by the host API.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.APIToken = token
	}
}

// WithCustomizations writes content to a table file in the base directory
// and points the album at it. The extension selects the format.
func WithCustomizations(name, content string) ConfigOption {
	return func(b *configBuilder) {
		target := filepath.Join(b.baseDir, name)
		WriteText(b.t, target, content)
		b.cfg.Album.Customizations = target
	}
}

// WithStaticDir creates a static asset directory for the host.
func WithStaticDir() ConfigOption {
	return func(b *configBuilder) {
		dir := filepath.Join(b.baseDir, "static")
		WriteText(b.t, filepath.Join(dir, "app.js"), "console.log('memorylane')\n")
		b.cfg.Paths.StaticDir = dir
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
