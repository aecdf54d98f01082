package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"memorylane/internal/api"
	"memorylane/internal/config"
	"memorylane/internal/logging"
	"memorylane/internal/services"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon
	pages  *pageRenderer

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		bind:   strings.TrimSpace(cfg.Paths.APIBind),
		logger: logging.NewComponentLogger(logger, "api-server"),
		daemon: d,
		pages:  newPageRenderer(cfg.Paths.StaticDir != ""),
	}

	token := strings.TrimSpace(cfg.Paths.APIToken)
	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleIndex)
	mux.HandleFunc("/api/album", authMiddleware(token, srv.handleAlbum))
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatus))

	if cfg.Storage.Backend == config.BackendLocal {
		if prefix, ok := photoPrefix(cfg.Storage.BaseURL, cfg.Storage.Folder); ok {
			mux.Handle(prefix, http.StripPrefix(prefix, fileServer(cfg.PhotoDir())))
		}
	}
	if dir := strings.TrimSpace(cfg.Paths.StaticDir); dir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", fileServer(dir)))
	}

	srv.server = &http.Server{
		Handler:           srv.withRequestID(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.FetchTimeout() + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

// photoPrefix returns the mux pattern under which local photos are served.
// Absolute base URLs point elsewhere and are not served by the host.
func photoPrefix(baseURL, folder string) (string, bool) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "/") {
		return "", false
	}
	prefix := path.Join(baseURL, folder)
	return strings.TrimRight(prefix, "/") + "/", true
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := services.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *apiServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	logger := logging.WithContext(r.Context(), s.log())
	session, err := s.daemon.loader.Load(r.Context())
	if err != nil {
		logging.ErrorWithContext(logger, "album page failed", "album_page_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "reload the page"),
		)
		s.pages.renderError(w, logger, err)
		return
	}
	s.pages.renderAlbum(w, logger, api.FromSession(session))
}

func (s *apiServer) handleAlbum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	session, err := s.daemon.loader.Load(r.Context())
	if err != nil {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.log()), "album request failed", "album_api_failed",
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromSession(session))
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := s.daemon.Status()
	payload := api.StatusResponse{
		Running:      status.Running,
		PID:          status.PID,
		Backend:      status.Backend,
		Folder:       status.Folder,
		LockFilePath: status.LockFilePath,
		StartedAt:    api.FormatTime(status.StartedAt),
	}
	if !status.StartedAt.IsZero() {
		payload.Uptime = time.Since(status.StartedAt).Round(time.Second).String()
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.NewNop()
}

// fileServer serves files under dir without directory listings.
func fileServer(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		target := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
