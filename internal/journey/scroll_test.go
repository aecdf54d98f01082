package journey

import (
	"math"
	"testing"
)

func TestProgress(t *testing.T) {
	layout := Layout{ViewportHeight: 800, SectionTop: 1000, SectionHeight: 2000, HasSection: true}
	cases := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{600, 0},
		{1600, 0.5},
		{2600, 1},
		{5000, 1},
	}
	for _, tc := range cases {
		if got := Progress(tc.offset, layout); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Progress(%v) = %v, want %v", tc.offset, got, tc.want)
		}
	}
	if got := Progress(1600, Layout{ViewportHeight: 800}); got != 0 {
		t.Fatalf("zero section height should give 0, got %v", got)
	}
}

func TestParallaxOffset(t *testing.T) {
	want := []float64{-500, -700, -900}
	for i, w := range want {
		if got := ParallaxOffset(1000, i); math.Abs(got-w) > 1e-9 {
			t.Fatalf("layer %d offset = %v, want %v", i, got, w)
		}
	}
}

func TestHintVisible(t *testing.T) {
	if !HintVisible(0) || !HintVisible(100) {
		t.Fatal("hint should be visible up to 100")
	}
	if HintVisible(100.5) {
		t.Fatal("hint should hide past 100")
	}
}

func TestScrollEngineCoalescesWithinFrame(t *testing.T) {
	frames := &queuedFrames{}
	renderer := &recordingRenderer{}
	layout := staticLayout{ViewportHeight: 800, SectionTop: 1000, SectionHeight: 2000, HasSection: true, HasTrain: true, HasHint: true, Layers: 3}
	engine := NewScrollEngine(frames, layout, renderer)

	for _, offset := range []float64{10, 200, 900, 1600} {
		engine.OnScroll(offset)
	}
	if len(frames.queue) != 1 {
		t.Fatalf("expected one pending frame, got %d", len(frames.queue))
	}
	if engine.Frames() != 0 {
		t.Fatal("recompute must wait for the frame")
	}
	frames.flush()

	if engine.Frames() != 1 {
		t.Fatalf("expected 1 recompute, got %d", engine.Frames())
	}
	state := engine.State()
	if state.Offset != 1600 || state.TrainPercent != 50 {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.HintVisible {
		t.Fatal("hint should be hidden")
	}
	if len(renderer.train) != 1 || renderer.train[0] != 50 {
		t.Fatalf("unexpected train moves %v", renderer.train)
	}
	if math.Abs(renderer.layers[2]+1440) > 1e-9 {
		t.Fatalf("unexpected layer 2 offset %v", renderer.layers[2])
	}

	engine.OnScroll(50)
	if len(frames.queue) != 1 {
		t.Fatal("a new frame should be requested after the previous one ran")
	}
	frames.flush()
	if engine.Frames() != 2 || !engine.State().HintVisible {
		t.Fatalf("unexpected state after second frame: %+v", engine.State())
	}
}

func TestScrollEngineSkipsMissingElements(t *testing.T) {
	renderer := &recordingRenderer{}
	engine := NewScrollEngine(nil, staticLayout{ViewportHeight: 800}, renderer)
	engine.OnScroll(400)

	if len(renderer.train) != 0 || len(renderer.layers) != 0 || len(renderer.hint) != 0 {
		t.Fatalf("renderer should not be touched: %+v", renderer)
	}
	if engine.Frames() != 1 {
		t.Fatalf("expected immediate recompute without scheduler, got %d", engine.Frames())
	}

	bare := NewScrollEngine(nil, nil, nil)
	bare.OnScroll(10)
	if bare.State().Offset != 10 {
		t.Fatalf("unexpected state %+v", bare.State())
	}
}

func TestScrollEngineAttach(t *testing.T) {
	source := &manualScroll{}
	engine := NewScrollEngine(nil, nil, nil)
	detach := engine.Attach(source)
	source.emit(300)
	if engine.State().Offset != 300 {
		t.Fatalf("expected offset 300, got %v", engine.State().Offset)
	}
	detach()
	source.emit(900)
	if engine.State().Offset != 300 {
		t.Fatal("events after detach must be ignored")
	}
	engine.Attach(nil)()
}
