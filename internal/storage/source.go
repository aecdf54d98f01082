package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"sort"
	"strings"

	"memorylane/internal/config"
	"memorylane/internal/memory"
	"memorylane/internal/services"
)

// Source lists the assets stored under a folder.
type Source interface {
	FetchAll(ctx context.Context, folder string) ([]memory.ImageAsset, error)
}

// HTTPDoer describes the HTTP client used by remote sources.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// New selects the source for cfg.Storage.Backend.
func New(cfg *config.Config, logger *slog.Logger) (Source, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "storage", "init", "config is required", nil)
	}
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		return NewLocalSource(cfg.Storage.Root, cfg.Storage.BaseURL, logger), nil
	case config.BackendFirebase:
		return NewFirebaseSource(FirebaseOptions{
			Endpoint:       cfg.Firebase.Endpoint,
			Bucket:         cfg.Firebase.Bucket,
			APIKey:         cfg.Firebase.APIKey,
			MaxConcurrency: cfg.Storage.MaxConcurrency,
		}, http.DefaultClient, logger), nil
	default:
		return nil, services.Wrap(services.ErrConfiguration, "storage", "init", fmt.Sprintf("unknown backend %q", cfg.Storage.Backend), nil)
	}
}

func sortByCreated(assets []memory.ImageAsset) {
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].CreatedAt.Before(assets[j].CreatedAt)
	})
}

func cleanFolder(folder string) string {
	return strings.Trim(path.Clean("/"+strings.TrimSpace(folder)), "/")
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".avif": "image/avif",
}

// IsImage reports whether name has a recognized photo extension.
func IsImage(name string) bool {
	_, ok := imageExtensions[strings.ToLower(path.Ext(name))]
	return ok
}
