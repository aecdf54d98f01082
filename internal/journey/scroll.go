package journey

// HintThreshold is the scroll offset up to which the scroll hint stays visible.
const HintThreshold = 100

// Layout is a snapshot of the measurements the scroll engine needs. Elements
// that are absent from the page are reported through the Has* flags and a
// zero layer count.
type Layout struct {
	ViewportHeight float64
	SectionTop     float64
	SectionHeight  float64
	HasSection     bool
	HasTrain       bool
	HasHint        bool
	Layers         int
}

// LayoutSource measures the rendered page.
type LayoutSource interface {
	Layout() Layout
}

// FrameScheduler runs fn before the next rendered frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ScrollSource delivers scroll offsets. Subscribe returns a function that
// removes the subscription.
type ScrollSource interface {
	Subscribe(fn func(offset float64)) (unsubscribe func())
}

// ScrollRenderer applies a recomputed frame to the page.
type ScrollRenderer interface {
	MoveTrain(percent float64)
	OffsetLayer(index int, px float64)
	SetHintVisible(visible bool)
}

// ScrollState is the result of the latest recomputation.
type ScrollState struct {
	Offset       float64
	Progress     float64
	TrainPercent float64
	LayerOffsets []float64
	HintVisible  bool
}

// ScrollEngine coalesces scroll events into at most one recomputation per
// frame.
type ScrollEngine struct {
	frames   FrameScheduler
	layout   LayoutSource
	renderer ScrollRenderer

	offset  float64
	pending bool
	frameN  int
	state   ScrollState
}

// NewScrollEngine wires an engine to its collaborators. A nil layout source
// or renderer turns the matching steps into no-ops. A nil scheduler makes
// every scroll event recompute immediately.
func NewScrollEngine(frames FrameScheduler, layout LayoutSource, renderer ScrollRenderer) *ScrollEngine {
	return &ScrollEngine{frames: frames, layout: layout, renderer: renderer, state: ScrollState{HintVisible: true}}
}

// Attach subscribes the engine to source.
func (e *ScrollEngine) Attach(source ScrollSource) func() {
	if source == nil {
		return func() {}
	}
	return source.Subscribe(e.OnScroll)
}

// OnScroll records offset and requests a frame unless one is already pending.
func (e *ScrollEngine) OnScroll(offset float64) {
	e.offset = offset
	if e.pending {
		return
	}
	if e.frames == nil {
		e.Recompute()
		return
	}
	e.pending = true
	e.frames.RequestFrame(e.runFrame)
}

func (e *ScrollEngine) runFrame() {
	e.pending = false
	e.Recompute()
}

// Recompute runs the train, parallax and hint steps for the latest offset.
func (e *ScrollEngine) Recompute() {
	e.frameN++
	var layout Layout
	if e.layout != nil {
		layout = e.layout.Layout()
	}

	state := ScrollState{Offset: e.offset}
	if layout.HasSection {
		state.Progress = Progress(e.offset, layout)
		state.TrainPercent = state.Progress * 100
		if layout.HasTrain && e.renderer != nil {
			e.renderer.MoveTrain(state.TrainPercent)
		}
	}
	if layout.Layers > 0 {
		state.LayerOffsets = make([]float64, layout.Layers)
		for i := range state.LayerOffsets {
			state.LayerOffsets[i] = ParallaxOffset(e.offset, i)
			if e.renderer != nil {
				e.renderer.OffsetLayer(i, state.LayerOffsets[i])
			}
		}
	}
	state.HintVisible = HintVisible(e.offset)
	if layout.HasHint && e.renderer != nil {
		e.renderer.SetHintVisible(state.HintVisible)
	}
	e.state = state
}

// State returns the result of the last recomputation.
func (e *ScrollEngine) State() ScrollState {
	return e.state
}

// Frames reports how many recomputations have run.
func (e *ScrollEngine) Frames() int {
	return e.frameN
}

// Progress maps offset to the train's position along the track in [0, 1].
func Progress(offset float64, layout Layout) float64 {
	if layout.SectionHeight <= 0 {
		return 0
	}
	p := (offset - layout.SectionTop + layout.ViewportHeight/2) / layout.SectionHeight
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ParallaxOffset is the vertical translation of layer index; deeper layers
// move faster.
func ParallaxOffset(offset float64, index int) float64 {
	speed := 0.5 + float64(index)*0.2
	return -(offset * speed)
}

// HintVisible reports whether the scroll hint is shown at offset.
func HintVisible(offset float64) bool {
	return offset <= HintThreshold
}
