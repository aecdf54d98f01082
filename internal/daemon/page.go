package daemon

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"memorylane/internal/album"
	"memorylane/internal/api"
	"memorylane/internal/journey"
	"memorylane/internal/logging"
)

//go:embed web/*.html.tmpl
var pageFiles embed.FS

// parallaxLayers is the number of background layers on the album page.
const parallaxLayers = 3

type pageRenderer struct {
	album   *template.Template
	failure *template.Template
	wasm    bool
}

type albumPage struct {
	Album          api.AlbumResponse
	AlbumJSON      template.JS
	Layers         []int
	Threshold      float64
	HintThreshold  int
	FadeMillis     int64
	SwipeThreshold int
	Wasm           bool
}

type errorPage struct {
	Message   string
	Retryable bool
}

func newPageRenderer(wasm bool) *pageRenderer {
	return &pageRenderer{
		album:   template.Must(template.ParseFS(pageFiles, "web/album.html.tmpl")),
		failure: template.Must(template.ParseFS(pageFiles, "web/error.html.tmpl")),
		wasm:    wasm,
	}
}

func (p *pageRenderer) renderAlbum(w http.ResponseWriter, logger *slog.Logger, resp api.AlbumResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		p.renderError(w, logger, err)
		return
	}
	layers := make([]int, parallaxLayers)
	for i := range layers {
		layers[i] = i
	}
	page := albumPage{
		Album:          resp,
		AlbumJSON:      template.JS(data),
		Layers:         layers,
		Threshold:      journey.UnlockThreshold,
		HintThreshold:  journey.HintThreshold,
		FadeMillis:     journey.FadeDuration.Milliseconds(),
		SwipeThreshold: journey.SwipeThreshold,
		Wasm:           p.wasm,
	}
	var buf bytes.Buffer
	if err := p.album.Execute(&buf, page); err != nil {
		p.renderError(w, logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Debug("album page write failed", logging.Error(err))
	}
}

func (p *pageRenderer) renderError(w http.ResponseWriter, logger *slog.Logger, cause error) {
	page := errorPage{
		Message:   "We couldn't load your memories.",
		Retryable: true,
	}
	if !errors.Is(cause, album.ErrFatalInit) {
		page.Message = "Something went wrong while preparing the album."
	}
	var buf bytes.Buffer
	if err := p.failure.Execute(&buf, page); err != nil {
		logger.Error("error page render failed", logging.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}
