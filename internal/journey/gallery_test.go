package journey

import (
	"errors"
	"testing"

	"memorylane/internal/memory"
)

func TestGalleryWraparound(t *testing.T) {
	g := NewGallery(nil)
	if err := g.Open(images(6), 2); err != nil {
		t.Fatalf("Open: %v", err)
	}
	for i := 0; i < 24; i++ {
		g.Next()
	}
	if g.Index() != 2 {
		t.Fatalf("24 nexts should return to 2, got %d", g.Index())
	}
	for start := 0; start < 6; start++ {
		if err := g.GoTo(start); err != nil {
			t.Fatalf("GoTo(%d): %v", start, err)
		}
		g.Prev()
		g.Next()
		if g.Index() != start {
			t.Fatalf("prev then next from %d landed on %d", start, g.Index())
		}
	}
	_ = g.GoTo(0)
	g.Prev()
	if g.Index() != 5 {
		t.Fatalf("prev from 0 should wrap to 5, got %d", g.Index())
	}
}

func TestGalleryOpenValidation(t *testing.T) {
	view := &modalView{}
	g := NewGallery(view)
	if err := g.Open(nil, 0); !errors.Is(err, ErrEmptyGallery) {
		t.Fatalf("expected ErrEmptyGallery, got %v", err)
	}
	if err := g.Open(images(3), 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if g.IsOpen() || view.scrollLocked || len(view.shown) != 0 {
		t.Fatal("failed open must not change state")
	}
}

func TestGalleryGoToRejectsOutOfRange(t *testing.T) {
	g := NewGallery(nil)
	_ = g.Open(images(4), 1)
	for _, j := range []int{-1, 4, 100} {
		if err := g.GoTo(j); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("GoTo(%d) = %v", j, err)
		}
		if g.Index() != 1 {
			t.Fatalf("index changed to %d", g.Index())
		}
	}
}

func TestGalleryClosedIsNoop(t *testing.T) {
	view := &modalView{}
	g := NewGallery(view)
	g.Next()
	g.Prev()
	if err := g.GoTo(3); err != nil {
		t.Fatalf("GoTo while closed: %v", err)
	}
	if g.HandleKey("ArrowRight") || g.HandleSwipe(300, 0) {
		t.Fatal("input must be ignored while closed")
	}
	g.Close()
	if len(view.shown) != 0 || view.hidden != 0 {
		t.Fatalf("view touched while closed: %+v", view)
	}
	if _, ok := g.Current(); ok {
		t.Fatal("closed gallery has no current image")
	}
}

func TestGalleryViewLifecycle(t *testing.T) {
	view := &modalView{}
	g := NewGallery(view)
	_ = g.Open(images(3), 0)
	if !view.scrollLocked {
		t.Fatal("open must lock page scroll")
	}
	g.Next()
	_ = g.GoTo(2)
	want := []viewCall{{0, 3, "a"}, {1, 3, "b"}, {2, 3, "c"}}
	if len(view.shown) != len(want) {
		t.Fatalf("unexpected show calls %+v", view.shown)
	}
	for i := range want {
		if view.shown[i] != want[i] {
			t.Fatalf("show %d = %+v, want %+v", i, view.shown[i], want[i])
		}
	}
	g.Close()
	if view.scrollLocked || view.hidden != 1 || g.IsOpen() {
		t.Fatalf("close did not restore: %+v", view)
	}
}

func TestGalleryKeysAndSwipes(t *testing.T) {
	g := NewGallery(nil)
	_ = g.Open(images(5), 0)

	if !g.HandleKey("ArrowRight") || g.Index() != 1 {
		t.Fatalf("ArrowRight: index %d", g.Index())
	}
	if !g.HandleKey("ArrowLeft") || g.Index() != 0 {
		t.Fatalf("ArrowLeft: index %d", g.Index())
	}
	if g.HandleKey("Enter") {
		t.Fatal("Enter must not be consumed")
	}
	if !g.HandleSwipe(300, 200) || g.Index() != 1 {
		t.Fatalf("left swipe should go next, index %d", g.Index())
	}
	if !g.HandleSwipe(100, 200) || g.Index() != 0 {
		t.Fatalf("right swipe should go prev, index %d", g.Index())
	}
	if g.HandleSwipe(100, 150) || g.Index() != 0 {
		t.Fatal("50px is below the swipe threshold")
	}
	if !g.HandleKey("Escape") || g.IsOpen() {
		t.Fatal("Escape should close")
	}
}

func TestGalleryOpenStationRejectsEmptyStation(t *testing.T) {
	view := &modalView{}
	g := NewGallery(view)
	if err := g.OpenStation(memory.MemoryStation{Title: "Empty"}); !errors.Is(err, ErrEmptyGallery) {
		t.Fatalf("expected ErrEmptyGallery, got %v", err)
	}
	if len(view.headers) != 0 || g.IsOpen() {
		t.Fatalf("empty station should leave the modal untouched: headers=%v open=%v", view.headers, g.IsOpen())
	}
}
