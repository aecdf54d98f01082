package preflight

import (
	"context"
	"log/slog"

	"memorylane/internal/config"
	"memorylane/internal/storage"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Local-only checks are skipped for the firebase backend.
func RunAll(ctx context.Context, cfg *config.Config, logger *slog.Logger) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Log directory (always checked)
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))

	if cfg.Storage.Backend == config.BackendLocal {
		results = append(results, CheckReadableDirectory("Photo directory", cfg.PhotoDir()))
	}
	if cfg.Paths.StaticDir != "" {
		results = append(results, CheckReadableDirectory("Static directory", cfg.Paths.StaticDir))
	}

	results = append(results, CheckCustomizations(cfg.Album.Customizations))
	results = append(results, CheckAPIBind(cfg.Paths.APIBind))

	source, err := storage.New(cfg, logger)
	if err != nil {
		results = append(results, Result{Name: "Storage", Detail: err.Error()})
		return results
	}
	results = append(results, CheckStorage(ctx, source, cfg.Storage.Folder, cfg.FetchTimeout()))
	return results
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
