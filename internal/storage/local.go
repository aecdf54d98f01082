package storage

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"memorylane/internal/logging"
	"memorylane/internal/memory"
	"memorylane/internal/services"
)

// LocalSource lists photos from a directory tree on disk. URLs point at the
// host's photo route.
type LocalSource struct {
	root    string
	baseURL string
	logger  *slog.Logger
}

// NewLocalSource returns a source rooted at root whose asset URLs start with
// baseURL.
func NewLocalSource(root, baseURL string, logger *slog.Logger) *LocalSource {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LocalSource{
		root:    root,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logging.NewComponentLogger(logger, "storage.local"),
	}
}

// FetchAll lists regular image files directly inside root/folder.
func (s *LocalSource) FetchAll(ctx context.Context, folder string) ([]memory.ImageAsset, error) {
	folder = cleanFolder(folder)
	dir := filepath.Join(s.root, filepath.FromSlash(folder))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "storage.local", "list", dir, err)
		}
		return nil, services.Wrap(services.ErrTransient, "storage.local", "list", dir, err)
	}

	assets := make([]memory.ImageAsset, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, services.Wrap(services.ErrTimeout, "storage.local", "list", dir, err)
		}
		if !entry.Type().IsRegular() || !IsImage(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.Debug("skipping unreadable file", logging.String("name", entry.Name()), logging.Error(err))
			continue
		}
		assets = append(assets, memory.ImageAsset{
			URL:         s.assetURL(folder, entry.Name()),
			Name:        entry.Name(),
			FullPath:    path.Join(folder, entry.Name()),
			CreatedAt:   info.ModTime().UTC(),
			Updated:     info.ModTime().UTC(),
			Size:        info.Size(),
			ContentType: imageExtensions[strings.ToLower(path.Ext(entry.Name()))],
		})
	}
	sortByCreated(assets)
	s.logger.Debug("listed local photos", logging.String("dir", dir), logging.Int("count", len(assets)))
	return assets, nil
}

func (s *LocalSource) assetURL(folder, name string) string {
	parts := []string{s.baseURL}
	if folder != "" {
		for _, segment := range strings.Split(folder, "/") {
			parts = append(parts, url.PathEscape(segment))
		}
	}
	parts = append(parts, url.PathEscape(name))
	return strings.Join(parts, "/")
}
