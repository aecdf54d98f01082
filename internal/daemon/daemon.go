package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"memorylane/internal/album"
	"memorylane/internal/config"
	"memorylane/internal/logging"
)

// AlbumLoader builds one album session per call.
type AlbumLoader interface {
	Load(ctx context.Context) (*album.Session, error)
}

// Daemon serves the album page and API and enforces single-instance execution.
type Daemon struct {
	cfg    *config.Config
	base   *slog.Logger
	logger *slog.Logger
	loader AlbumLoader

	lockPath string
	lock     *flock.Flock

	mu        sync.Mutex
	server    *apiServer
	startedAt time.Time

	running atomic.Bool
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	Backend      string
	Folder       string
	LockFilePath string
	Address      string
	StartedAt    time.Time
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, loader AlbumLoader, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || loader == nil {
		return nil, errors.New("daemon requires config and album loader")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		base:     logger,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		loader:   loader,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and starts the HTTP server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}
	if err := d.cfg.EnsureDirectories(); err != nil {
		return err
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another memorylane instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	server := newAPIServer(d.cfg, d, d.base)
	if err := server.start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return err
	}

	d.mu.Lock()
	d.server = server
	d.startedAt = time.Now().UTC()
	d.cancel = cancel
	d.mu.Unlock()

	d.running.Store(true)
	d.logger.Info("memorylane daemon started",
		logging.String(logging.FieldEventType, "daemon_started"),
		logging.String("lock", d.lockPath),
		logging.String("address", server.addr()),
		logging.String("backend", d.cfg.Storage.Backend),
	)
	return nil
}

// Stop shuts down the HTTP server and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	d.mu.Lock()
	server := d.server
	cancel := d.cancel
	d.server = nil
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	server.stop()
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "daemon_lock",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove "+d.lockPath+" if no instance is running"),
		)
	}
	d.running.Store(false)
	d.logger.Info("memorylane daemon stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Addr returns the address the server listens on, or "" when stopped.
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.server.addr()
}

// Status reports the current runtime information.
func (d *Daemon) Status() Status {
	d.mu.Lock()
	startedAt := d.startedAt
	address := d.server.addr()
	d.mu.Unlock()
	return Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		Backend:      d.cfg.Storage.Backend,
		Folder:       d.cfg.Storage.Folder,
		LockFilePath: d.lockPath,
		Address:      address,
		StartedAt:    startedAt,
	}
}

// Handler returns the routing handler without starting a listener.
func (d *Daemon) Handler() http.Handler {
	return newAPIServer(d.cfg, d, d.base).server.Handler
}
