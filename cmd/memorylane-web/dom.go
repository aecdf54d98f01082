//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"syscall/js"

	"memorylane/internal/journey"
	"memorylane/internal/memory"
)

type rafScheduler struct{}

func (rafScheduler) RequestFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
}

type windowScroll struct{}

func (windowScroll) Subscribe(fn func(offset float64)) func() {
	window := js.Global()
	handler := js.FuncOf(func(js.Value, []js.Value) any {
		fn(window.Get("scrollY").Float())
		return nil
	})
	opts := map[string]any{"passive": true}
	window.Call("addEventListener", "scroll", handler, opts)
	return func() {
		window.Call("removeEventListener", "scroll", handler, opts)
		handler.Release()
	}
}

type domLayout struct {
	doc js.Value
}

func newDOMLayout(doc js.Value) domLayout {
	return domLayout{doc: doc}
}

func (l domLayout) Layout() journey.Layout {
	window := js.Global()
	out := journey.Layout{
		ViewportHeight: window.Get("innerHeight").Float(),
		HasTrain:       l.doc.Call("getElementById", "train").Truthy(),
		HasHint:        l.doc.Call("getElementById", "scroll-hint").Truthy(),
		Layers:         l.doc.Call("querySelectorAll", ".parallax-layer").Length(),
	}
	if section := l.doc.Call("getElementById", "journey"); section.Truthy() {
		rect := section.Call("getBoundingClientRect")
		out.HasSection = true
		out.SectionTop = rect.Get("top").Float() + window.Get("scrollY").Float()
		out.SectionHeight = section.Get("offsetHeight").Float()
	}
	return out
}

type domRenderer struct {
	train  js.Value
	hint   js.Value
	layers js.Value
}

func newDOMRenderer(doc js.Value) domRenderer {
	return domRenderer{
		train:  doc.Call("getElementById", "train"),
		hint:   doc.Call("getElementById", "scroll-hint"),
		layers: doc.Call("querySelectorAll", ".parallax-layer"),
	}
}

func (r domRenderer) MoveTrain(percent float64) {
	if r.train.Truthy() {
		r.train.Get("style").Set("top", fmt.Sprintf("%.2f%%", percent))
	}
}

func (r domRenderer) OffsetLayer(index int, px float64) {
	if index >= r.layers.Length() {
		return
	}
	r.layers.Index(index).Get("style").Set("transform", fmt.Sprintf("translateY(%.1fpx)", px))
}

func (r domRenderer) SetHintVisible(visible bool) {
	if !r.hint.Truthy() {
		return
	}
	r.hint.Get("classList").Call("toggle", "hidden", !visible)
}

// intersectionSource adapts IntersectionObserver. One observer is created per
// threshold; events are dropped until a handler is set.
type intersectionSource struct {
	doc       js.Value
	observers map[float64]js.Value
	handle    func(journey.VisibilityEvent) bool
}

func newIntersectionSource(doc js.Value) *intersectionSource {
	return &intersectionSource{doc: doc, observers: make(map[float64]js.Value)}
}

func (s *intersectionSource) setHandler(fn func(journey.VisibilityEvent) bool) {
	s.handle = fn
}

func (s *intersectionSource) Observe(stationID string, threshold float64) {
	el := s.doc.Call("getElementById", stationID)
	if !el.Truthy() {
		return
	}
	s.observer(threshold).Call("observe", el)
}

func (s *intersectionSource) Unobserve(stationID string) {
	el := s.doc.Call("getElementById", stationID)
	if !el.Truthy() {
		return
	}
	for _, obs := range s.observers {
		obs.Call("unobserve", el)
	}
}

func (s *intersectionSource) observer(threshold float64) js.Value {
	if obs, ok := s.observers[threshold]; ok {
		return obs
	}
	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			s.dispatch(entries.Index(i))
		}
		return nil
	})
	obs := js.Global().Get("IntersectionObserver").New(callback, map[string]any{"threshold": threshold})
	s.observers[threshold] = obs
	return obs
}

func (s *intersectionSource) dispatch(entry js.Value) {
	if s.handle == nil || !entry.Get("isIntersecting").Bool() {
		return
	}
	target := entry.Get("target")
	s.handle(journey.VisibilityEvent{
		StationID: target.Get("id").String(),
		Ratio:     entry.Get("intersectionRatio").Float(),
		Origin:    markerCenter(target),
	})
}

// markerCenter is the page position of the centre of a station's emblem, or
// of the station card when it has none.
func markerCenter(station js.Value) journey.Point {
	marker := station.Call("querySelector", ".emblem")
	if !marker.Truthy() {
		marker = station
	}
	rect := marker.Call("getBoundingClientRect")
	window := js.Global()
	return journey.MarkerOrigin(
		journey.Rect{
			Left:   rect.Get("left").Float(),
			Top:    rect.Get("top").Float(),
			Width:  rect.Get("width").Float(),
			Height: rect.Get("height").Float(),
		},
		journey.Point{X: window.Get("scrollX").Float(), Y: window.Get("scrollY").Float()},
	)
}

type particleSink struct {
	doc js.Value
}

func newParticleSink(doc js.Value) particleSink {
	return particleSink{doc: doc}
}

func (p particleSink) Emit(reward journey.Reward) {
	body := p.doc.Get("body")
	millis := reward.Lifetime.Milliseconds()
	for _, particle := range reward.Particles {
		el := p.doc.Call("createElement", "div")
		el.Set("className", "particle")
		style := el.Get("style")
		style.Set("left", fmt.Sprintf("%.1fpx", reward.Origin.X))
		style.Set("top", fmt.Sprintf("%.1fpx", reward.Origin.Y))
		body.Call("appendChild", el)

		frames := []any{
			map[string]any{"transform": "translate(0, 0)", "opacity": 1},
			map[string]any{"transform": fmt.Sprintf("translate(%.1fpx, %.1fpx)", particle.DX, particle.DY), "opacity": 0},
		}
		el.Call("animate", frames, map[string]any{"duration": millis, "easing": "ease-out"})
		removeLater(el, millis)
	}
}

func removeLater(el js.Value, millis int64) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		el.Call("remove")
		return nil
	})
	js.Global().Call("setTimeout", cb, millis)
}

type modalView struct {
	doc   js.Value
	modal js.Value
	title js.Value
	date  js.Value
	image js.Value
	dots  js.Value
}

func newModalView(doc js.Value) modalView {
	return modalView{
		doc:   doc,
		modal: doc.Call("getElementById", "gallery"),
		title: doc.Call("getElementById", "gallery-title"),
		date:  doc.Call("getElementById", "gallery-date"),
		image: doc.Call("getElementById", "gallery-image"),
		dots:  doc.Call("getElementById", "gallery-dots"),
	}
}

func (m modalView) SetHeader(title, date string) {
	if m.title.Truthy() {
		m.title.Set("textContent", title)
	}
	if m.date.Truthy() {
		m.date.Set("textContent", date)
	}
}

func (m modalView) Show(image memory.ImageAsset, index, count int) {
	if !m.modal.Truthy() {
		return
	}
	m.modal.Get("classList").Call("add", "open")
	m.renderDots(index, count)
	if !m.image.Truthy() {
		return
	}
	m.image.Get("classList").Call("add", "fading")
	img := m.image
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		img.Set("src", image.URL)
		img.Set("alt", memory.Caption(image.Name))
		img.Get("classList").Call("remove", "fading")
		return nil
	})
	js.Global().Call("setTimeout", cb, journey.FadeDuration.Milliseconds())
}

func (m modalView) renderDots(index, count int) {
	if !m.dots.Truthy() {
		return
	}
	m.dots.Set("innerHTML", "")
	for i := 0; i < count; i++ {
		dot := m.doc.Call("createElement", "span")
		dot.Get("dataset").Set("index", strconv.Itoa(i))
		if i == index {
			dot.Set("className", "active")
		}
		m.dots.Call("appendChild", dot)
	}
}

func (m modalView) SetScrollLocked(locked bool) {
	overflow := ""
	if locked {
		overflow = "hidden"
	}
	m.doc.Get("body").Get("style").Set("overflow", overflow)
}

func (m modalView) Hide() {
	if m.modal.Truthy() {
		m.modal.Get("classList").Call("remove", "open")
	}
}
