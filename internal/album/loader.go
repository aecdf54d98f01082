package album

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"memorylane/internal/config"
	"memorylane/internal/logging"
	"memorylane/internal/memory"
	"memorylane/internal/services"
	"memorylane/internal/storage"
)

// ErrFatalInit marks a load that failed beyond what the demo fallback can
// recover. The host turns it into the retryable error page.
var ErrFatalInit = errors.New("album initialization failed")

// Origin names where a session's stations came from.
type Origin string

const (
	OriginStorage Origin = "storage"
	OriginDemo    Origin = "demo"
)

// Fallback reasons recorded on demo sessions.
const (
	ReasonFetchFailed = "fetch_failed"
	ReasonEmpty       = "empty_listing"
	ReasonUndated     = "no_dated_assets"
)

// Session is the result of one album load.
type Session struct {
	ID             string
	Title          string
	Origin         Origin
	Stations       []memory.MemoryStation
	Skipped        []memory.ImageAsset
	LoadedAt       time.Time
	FallbackReason string
	FetchError     error
}

// SkippedNames returns the names of assets that carried no date token.
func (s *Session) SkippedNames() []string {
	return memory.GroupResult{Skipped: s.Skipped}.SkippedNames()
}

// Loader builds sessions from a storage source.
type Loader struct {
	source   storage.Source
	resolver *memory.Resolver
	folder   string
	title    string
	timeout  time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewLoader constructs a loader. A zero timeout disables the fetch deadline.
func NewLoader(source storage.Source, resolver *memory.Resolver, folder, title string, timeout time.Duration, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{
		source:   source,
		resolver: resolver,
		folder:   folder,
		title:    title,
		timeout:  timeout,
		logger:   logging.NewComponentLogger(logger, "album"),
		now:      time.Now,
	}
}

// NewFromConfig wires the configured storage source and customization table.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Loader, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "album", "init", "config is required", nil)
	}
	source, err := storage.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	table, err := memory.LoadTable(cfg.Album.Customizations)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "album", "load customizations", cfg.Album.Customizations, err)
	}
	return NewLoader(source, memory.NewResolver(table), cfg.Storage.Folder, cfg.Album.Title, cfg.FetchTimeout(), logger), nil
}

// Load fetches, groups and builds one session. Fetch failures and empty
// listings produce a demo session rather than an error.
func (l *Loader) Load(ctx context.Context) (session *Session, err error) {
	session = &Session{ID: uuid.NewString(), Title: l.title, LoadedAt: l.now().UTC()}
	logger := l.logger.With(logging.String(logging.FieldSessionID, session.ID))
	ctx = services.WithSessionID(ctx, session.ID)

	defer func() {
		if r := recover(); r != nil {
			logging.ErrorWithContext(logger, "album load panicked", "album_fatal",
				logging.String("panic", fmt.Sprint(r)),
				logging.String(logging.FieldErrorHint, "reload the page; report the log if it persists"),
			)
			session = nil
			err = fmt.Errorf("%w: %v", ErrFatalInit, r)
		}
	}()

	assets, fetchErr := l.fetch(ctx)
	if fetchErr != nil {
		return l.fallback(logger, session, ReasonFetchFailed, fetchErr), nil
	}
	if len(assets) == 0 {
		return l.fallback(logger, session, ReasonEmpty, nil), nil
	}

	stations, grouped := memory.Organize(assets, l.resolver)
	session.Skipped = grouped.Skipped
	if len(grouped.Skipped) > 0 {
		logger.Info("skipped undated photos",
			logging.String(logging.FieldEventType, "album_skipped"),
			logging.Int("skipped", len(grouped.Skipped)),
		)
		logger.Debug("skipped photo names", logging.Strings("names", grouped.SkippedNames()))
	}
	if len(stations) == 0 {
		return l.fallback(logger, session, ReasonUndated, nil), nil
	}

	session.Origin = OriginStorage
	session.Stations = stations
	logger.Info("album loaded",
		logging.String(logging.FieldEventType, "album_loaded"),
		logging.Int("photos", len(assets)),
		logging.Int("stations", len(stations)),
	)
	return session, nil
}

func (l *Loader) fetch(ctx context.Context) ([]memory.ImageAsset, error) {
	if l.source == nil {
		return nil, services.Wrap(services.ErrConfiguration, "album", "fetch", "no storage source", nil)
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.source.FetchAll(ctx, l.folder)
}

func (l *Loader) fallback(logger *slog.Logger, session *Session, reason string, cause error) *Session {
	session.Origin = OriginDemo
	session.Stations = memory.DemoStations()
	session.FallbackReason = reason
	session.FetchError = cause

	attrs := []logging.Attr{
		logging.String("fallback_reason", reason),
		logging.String("folder", l.folder),
		logging.String(logging.FieldImpact, "showing demo memories instead of stored photos"),
	}
	switch {
	case cause != nil:
		attrs = append(attrs, logging.Error(cause), logging.Bool("retryable", services.Retryable(cause)))
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "check storage settings and connectivity"))
	case reason == ReasonUndated:
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "name photos with a YYYY-MM-DD date"))
	default:
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "upload photos to the configured folder"))
	}
	logging.WarnWithContext(logger, "using demo album", "album_fallback", attrs...)
	return session
}
