package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"memorylane/internal/memory"
	"memorylane/internal/services"
	"memorylane/internal/storage"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkAccess(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

// CheckReadableDirectory verifies that the directory exists and can be listed.
func CheckReadableDirectory(name, path string) Result {
	return checkAccess(name, path, unix.R_OK|unix.X_OK, "readable")
}

func checkAccess(name, path string, mode uint32, okDetail string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}

// CheckCustomizations parses the customization table.
func CheckCustomizations(path string) Result {
	const name = "Customizations"
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Passed: true, Detail: "none configured (month themes only)"}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s not found (month themes only)", path)}
	}
	table, err := memory.LoadTable(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d dates)", path, len(table))}
}

// CheckAPIBind verifies that the host address can be bound. An address held
// by a running host is reported as such.
func CheckAPIBind(bind string) Result {
	const name = "API bind"
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (in use; is memorylane already running?)", bind)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", bind, err)}
	}
	_ = listener.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (available)", bind)}
}

// CheckStorage lists folder once and reports how many photos carry a date.
// An empty or undated listing passes with a note because the album falls back
// to demo memories.
func CheckStorage(ctx context.Context, source storage.Source, folder string, timeout time.Duration) Result {
	const name = "Storage"
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	assets, err := source.FetchAll(ctx, folder)
	if err != nil {
		return Result{Name: name, Detail: summarizeStorageError(err)}
	}
	grouped := memory.GroupByDate(assets)
	dated := len(assets) - len(grouped.Skipped)
	switch {
	case len(assets) == 0:
		return Result{Name: name, Passed: true, Detail: "no photos found (demo album will be shown)"}
	case dated == 0:
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d photos, none dated (demo album will be shown)", len(assets))}
	}
	detail := fmt.Sprintf("%d photos in %d stations", dated, len(grouped.Groups))
	if len(grouped.Skipped) > 0 {
		detail += fmt.Sprintf(", %d undated skipped", len(grouped.Skipped))
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

func summarizeStorageError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, services.ErrTimeout):
		return "listing timed out (storage unresponsive)"
	case errors.Is(err, services.ErrNotFound):
		return "folder not found: " + err.Error()
	case errors.Is(err, services.ErrConfiguration):
		return "access denied or misconfigured: " + err.Error()
	}
	return err.Error()
}
