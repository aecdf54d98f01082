//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"memorylane/internal/api"
	"memorylane/internal/client"
	"memorylane/internal/journey"
	"memorylane/internal/logging"
)

func main() {
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
	if err != nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "web")

	resp, err := loadAlbum()
	hideLoading()
	if err != nil {
		logging.ErrorWithContext(logger, "album unavailable", "album_unavailable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "reload the page"),
		)
		return
	}

	doc := js.Global().Get("document")
	visibility := newIntersectionSource(doc)
	j := journey.New(api.ToStations(resp), journey.Deps{
		Frames:     rafScheduler{},
		Layout:     newDOMLayout(doc),
		Renderer:   newDOMRenderer(doc),
		Scroll:     windowScroll{},
		Visibility: visibility,
		Rewards:    newParticleSink(doc),
		Gallery:    newModalView(doc),
		OnUnlock: func(id string) {
			markUnlocked(doc, id)
			logger.Info("station unlocked", logging.String(logging.FieldEventType, "station_unlocked"), logging.String("station", id))
		},
	})
	visibility.setHandler(j.Unlocks.HandleVisibility)

	bindStations(doc, j, logger)
	bindGallery(doc, j.Gallery)
	j.Scroll.OnScroll(js.Global().Get("scrollY").Float())

	logger.Info("journey ready",
		logging.String(logging.FieldEventType, "journey_ready"),
		logging.Int("stations", len(resp.Stations)),
		logging.String("origin", resp.Origin),
	)
	select {}
}

// loadAlbum prefers the payload rendered into the page and falls back to the
// album API on the same origin.
func loadAlbum() (api.AlbumResponse, error) {
	var resp api.AlbumResponse
	el := js.Global().Get("document").Call("getElementById", "album-data")
	if el.Truthy() {
		raw := strings.TrimSpace(el.Get("textContent").String())
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &resp); err != nil {
				return resp, fmt.Errorf("decode embedded album: %w", err)
			}
			return resp, nil
		}
	}

	origin := js.Global().Get("location").Get("origin").String()
	c, err := client.New(origin, "")
	if err != nil {
		return resp, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return c.Album(ctx)
}

func bindStations(doc js.Value, j *journey.Journey, logger *slog.Logger) {
	for _, st := range j.Stations() {
		el := doc.Call("getElementById", st.ID)
		if !el.Truthy() {
			continue
		}
		id := st.ID
		el.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
			if err := j.OpenStation(id); err != nil && !errors.Is(err, journey.ErrLocked) {
				logger.Warn("open station", logging.String("station", id), logging.Error(err))
			}
			return nil
		}))
	}
}

func bindGallery(doc js.Value, g *journey.Gallery) {
	onClick := func(id string, fn func()) {
		if el := doc.Call("getElementById", id); el.Truthy() {
			el.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
				args[0].Call("stopPropagation")
				fn()
				return nil
			}))
		}
	}
	onClick("gallery-close", g.Close)
	onClick("gallery-prev", g.Prev)
	onClick("gallery-next", g.Next)

	doc.Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		if g.HandleKey(args[0].Get("key").String()) {
			args[0].Call("preventDefault")
		}
		return nil
	}))

	if dots := doc.Call("getElementById", "gallery-dots"); dots.Truthy() {
		dots.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			args[0].Call("stopPropagation")
			raw := args[0].Get("target").Get("dataset").Get("index")
			if raw.Type() != js.TypeString {
				return nil
			}
			if i, err := strconv.Atoi(raw.String()); err == nil {
				_ = g.GoTo(i)
			}
			return nil
		}))
	}

	modal := doc.Call("getElementById", "gallery")
	if !modal.Truthy() {
		return
	}
	modal.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		if args[0].Get("target").Equal(modal) {
			g.Close()
		}
		return nil
	}))
	var startX float64
	modal.Call("addEventListener", "touchstart", js.FuncOf(func(this js.Value, args []js.Value) any {
		startX = firstTouchX(args[0])
		return nil
	}), map[string]any{"passive": true})
	modal.Call("addEventListener", "touchend", js.FuncOf(func(this js.Value, args []js.Value) any {
		g.HandleSwipe(startX, firstTouchX(args[0]))
		return nil
	}), map[string]any{"passive": true})
}

func firstTouchX(event js.Value) float64 {
	touches := event.Get("changedTouches")
	if !touches.Truthy() || touches.Length() == 0 {
		return 0
	}
	return touches.Index(0).Get("screenX").Float()
}

// hideLoading completes the boot progress bar and fades the loading screen.
func hideLoading() {
	doc := js.Global().Get("document")
	if bar := doc.Call("getElementById", "loading-bar"); bar.Truthy() {
		bar.Get("style").Set("width", "100%")
	}
	if screen := doc.Call("getElementById", "loading"); screen.Truthy() {
		screen.Get("classList").Call("add", "hidden")
	}
}

func markUnlocked(doc js.Value, id string) {
	el := doc.Call("getElementById", id)
	if !el.Truthy() {
		return
	}
	classes := el.Get("classList")
	classes.Call("remove", "locked")
	classes.Call("add", "unlocked")
}
