package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// PhotoEpoch is the modification time of the first photo written by WritePhotos.
var PhotoEpoch = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WritePhotos creates small placeholder files named names inside dir. Their
// modification times increase by one minute in argument order starting at
// PhotoEpoch, so listing order is deterministic.
func WritePhotos(t testing.TB, dir string, names ...string) {
	t.Helper()

	for i, name := range names {
		target := filepath.Join(dir, name)
		WriteText(t, target, "\xff\xd8\xff\xe0")
		stamp := PhotoEpoch.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(target, stamp, stamp); err != nil {
			t.Fatalf("chtimes %s: %v", target, err)
		}
	}
}
