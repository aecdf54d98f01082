package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"memorylane/internal/album"
	"memorylane/internal/api"
	"memorylane/internal/config"
	"memorylane/internal/memory"
	"memorylane/internal/testsupport"
)

type loaderStub struct {
	session *album.Session
	err     error
	calls   int
}

func (l *loaderStub) Load(context.Context) (*album.Session, error) {
	l.calls++
	return l.session, l.err
}

func demoSession() *album.Session {
	return &album.Session{
		ID:       "session-1",
		Title:    "Our Journey",
		Origin:   album.OriginStorage,
		Stations: memory.DemoStations(),
		Skipped:  []memory.ImageAsset{{Name: "scan.png"}},
		LoadedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestDaemon(t *testing.T, loader AlbumLoader, opts ...testsupport.ConfigOption) (*Daemon, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	d, err := New(cfg, loader, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, cfg
}

func serve(t *testing.T, handler http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleAlbum(t *testing.T) {
	d, _ := newTestDaemon(t, &loaderStub{session: demoSession()})
	w := serve(t, d.Handler(), http.MethodGet, "/api/album", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp api.AlbumResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID != "session-1" || len(resp.Stations) != 5 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0] != "scan.png" {
		t.Fatalf("unexpected skipped %v", resp.Skipped)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestHandleAlbumError(t *testing.T) {
	d, _ := newTestDaemon(t, &loaderStub{err: album.ErrFatalInit})
	w := serve(t, d.Handler(), http.MethodGet, "/api/album", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp api.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Error == "" {
		t.Fatalf("expected error payload, got %q (%v)", w.Body.String(), err)
	}

	w = serve(t, d.Handler(), http.MethodPost, "/api/album", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestHandleIndexRendersStations(t *testing.T) {
	d, _ := newTestDaemon(t, &loaderStub{session: demoSession()})
	w := serve(t, d.Handler(), http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`id="station-0"`,
		`class="station unlocked"`,
		`class="station locked"`,
		"Autumn Beginnings",
		"Friday, September 23, 2022",
		"2 photos",
		`id="gallery"`,
		`id="gallery-title"`,
		`id="gallery-date"`,
		`id="scroll-hint"`,
		`id="album-data"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Contains(body, "memorylane.wasm") {
		t.Fatal("wasm bundle should only load when a static dir is configured")
	}
	if strings.Contains(body, `id="loading"`) {
		t.Fatal("loading screen should only render when the wasm bundle loads")
	}
}

func TestHandleIndexFatalShowsRetry(t *testing.T) {
	d, _ := newTestDaemon(t, &loaderStub{err: errors.Join(album.ErrFatalInit, errors.New("boom"))})
	w := serve(t, d.Handler(), http.MethodGet, "/", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Try Again") {
		t.Fatalf("expected retry action, got %s", w.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	d, _ := newTestDaemon(t, &loaderStub{session: demoSession()})
	if w := serve(t, d.Handler(), http.MethodGet, "/nope", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAPIRequiresToken(t *testing.T) {
	d, _ := newTestDaemon(t, &loaderStub{session: demoSession()}, testsupport.WithAPIToken("s3cret"))
	handler := d.Handler()

	if w := serve(t, handler, http.MethodGet, "/api/status", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	wrong := http.Header{"Authorization": {"Bearer nope"}}
	if w := serve(t, handler, http.MethodGet, "/api/album", wrong); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", w.Code)
	}
	right := http.Header{"Authorization": {"Bearer s3cret"}}
	if w := serve(t, handler, http.MethodGet, "/api/status", right); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
	if w := serve(t, handler, http.MethodGet, "/", nil); w.Code != http.StatusOK {
		t.Fatalf("album page must not require a token, got %d", w.Code)
	}
}

func TestPhotosAndStaticRoutes(t *testing.T) {
	d, cfg := newTestDaemon(t, &loaderStub{session: demoSession()}, testsupport.WithStaticDir())
	testsupport.WritePhotos(t, cfg.PhotoDir(), "2022-09-23_a.jpg")
	handler := d.Handler()

	w := serve(t, handler, http.MethodGet, "/photos/memories/2022-09-23_a.jpg", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected photo, got %d", w.Code)
	}
	if w := serve(t, handler, http.MethodGet, "/photos/memories/", nil); w.Code != http.StatusNotFound {
		t.Fatalf("directory listing must be hidden, got %d", w.Code)
	}
	w = serve(t, handler, http.MethodGet, "/static/app.js", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected static file, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), "memorylane") {
		t.Fatalf("unexpected static body %q", body)
	}
	page := serve(t, handler, http.MethodGet, "/", nil)
	if !strings.Contains(page.Body.String(), "/static/memorylane.wasm") {
		t.Fatal("expected wasm bootstrap when static dir is set")
	}
	for _, want := range []string{`id="loading"`, `id="loading-bar"`} {
		if !strings.Contains(page.Body.String(), want) {
			t.Fatalf("expected loading screen element %q", want)
		}
	}
}

func TestPhotosRouteDisabledForFirebase(t *testing.T) {
	d, cfg := newTestDaemon(t, &loaderStub{session: demoSession()}, testsupport.WithFirebase("http://127.0.0.1:1", "bucket"))
	testsupport.WritePhotos(t, filepath.Join(cfg.Storage.Root, cfg.Storage.Folder), "2022-09-23_a.jpg")
	if w := serve(t, d.Handler(), http.MethodGet, "/photos/memories/2022-09-23_a.jpg", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for firebase backend, got %d", w.Code)
	}
}

func TestPhotoPrefix(t *testing.T) {
	cases := []struct {
		base, folder, want string
		ok                 bool
	}{
		{"/photos", "memories", "/photos/memories/", true},
		{"/photos/", "", "/photos/", true},
		{"https://cdn.example.com", "memories", "", false},
	}
	for _, tc := range cases {
		got, ok := photoPrefix(tc.base, tc.folder)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("photoPrefix(%q, %q) = %q, %v", tc.base, tc.folder, got, ok)
		}
	}
}
