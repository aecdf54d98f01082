package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// PruneOldLogs removes files in dir matching pattern whose modification time
// is older than retentionDays. The active log path is never removed. A
// retentionDays value of 0 disables pruning. It returns the number of files
// removed.
func PruneOldLogs(logger *slog.Logger, dir, pattern, active string, retentionDays int) int {
	if retentionDays <= 0 || dir == "" {
		return 0
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	if abs, err := filepath.Abs(active); err == nil {
		active = abs
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0
	}
	removed := 0
	for _, path := range matches {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if path == active {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed; file remains", "log_retention_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check file permissions and log_dir ownership"),
				String(FieldImpact, "old log file remains on disk"),
			)
			continue
		}
		removed++
		if logger != nil {
			logger.Info("log pruned", String("path", path), String(FieldEventType, "log_pruned"))
		}
	}
	return removed
}

// RotatedLogPattern matches log files moved aside by RotateLogFile.
const RotatedLogPattern = "memorylane-*.log"

// RotateLogFile moves an existing LogFileName in dir aside to
// memorylane-{mtime}.log so each host run starts a fresh file. It returns the
// rotated path, or "" when there was nothing to rotate.
func RotateLogFile(dir string) (string, error) {
	current := filepath.Join(dir, LogFileName)
	info, err := os.Stat(current)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		return "", nil
	}
	stamp := info.ModTime().UTC().Format("20060102T150405.000Z")
	rotated := filepath.Join(dir, "memorylane-"+stamp+".log")
	if err := os.Rename(current, rotated); err != nil {
		return "", fmt.Errorf("rotate log file: %w", err)
	}
	return rotated, nil
}
