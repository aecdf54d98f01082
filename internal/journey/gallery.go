package journey

import (
	"errors"
	"time"

	"memorylane/internal/memory"
)

const (
	// FadeDuration is the length of the image swap transition.
	FadeDuration = 200 * time.Millisecond
	// SwipeThreshold is the horizontal distance in pixels a touch must travel
	// to count as a swipe.
	SwipeThreshold = 50
)

var (
	ErrEmptyGallery    = errors.New("gallery has no images")
	ErrIndexOutOfRange = errors.New("gallery index out of range")
	ErrLocked          = errors.New("station is locked")
)

// GalleryView renders the modal. SetHeader receives the station title and
// display date when a station opens. Show is called on every index change with
// the image to display; the view fades it in and refreshes the dot strip.
type GalleryView interface {
	SetHeader(title, date string)
	Show(image memory.ImageAsset, index, count int)
	SetScrollLocked(locked bool)
	Hide()
}

// Gallery is the modal navigator over one station's images.
type Gallery struct {
	view   GalleryView
	images []memory.ImageAsset
	index  int
	open   bool
}

// NewGallery returns a closed gallery. view may be nil.
func NewGallery(view GalleryView) *Gallery {
	return &Gallery{view: view}
}

// Open shows images starting at start and locks page scroll.
func (g *Gallery) Open(images []memory.ImageAsset, start int) error {
	if len(images) == 0 {
		return ErrEmptyGallery
	}
	if start < 0 || start >= len(images) {
		return ErrIndexOutOfRange
	}
	g.images = images
	g.index = start
	g.open = true
	if g.view != nil {
		g.view.SetScrollLocked(true)
	}
	g.show()
	return nil
}

// OpenStation opens the images of st from the first one, with the station
// title and date in the modal header.
func (g *Gallery) OpenStation(st memory.MemoryStation) error {
	if len(st.Images) == 0 {
		return ErrEmptyGallery
	}
	if g.view != nil {
		g.view.SetHeader(st.Title, st.DisplayDate)
	}
	return g.Open(st.Images, 0)
}

// Close hides the modal and restores page scroll.
func (g *Gallery) Close() {
	if !g.open {
		return
	}
	g.open = false
	g.images = nil
	g.index = 0
	if g.view != nil {
		g.view.Hide()
		g.view.SetScrollLocked(false)
	}
}

// Next advances with wraparound.
func (g *Gallery) Next() {
	if !g.open {
		return
	}
	g.index = (g.index + 1) % len(g.images)
	g.show()
}

// Prev retreats with wraparound.
func (g *Gallery) Prev() {
	if !g.open {
		return
	}
	g.index = (g.index - 1 + len(g.images)) % len(g.images)
	g.show()
}

// GoTo jumps to index j. Out of range indexes leave the gallery unchanged.
func (g *Gallery) GoTo(j int) error {
	if !g.open {
		return nil
	}
	if j < 0 || j >= len(g.images) {
		return ErrIndexOutOfRange
	}
	g.index = j
	g.show()
	return nil
}

// HandleKey maps arrow keys and Escape while open and reports whether the key
// was consumed.
func (g *Gallery) HandleKey(key string) bool {
	if !g.open {
		return false
	}
	switch key {
	case "ArrowLeft":
		g.Prev()
	case "ArrowRight":
		g.Next()
	case "Escape":
		g.Close()
	default:
		return false
	}
	return true
}

// HandleSwipe maps a horizontal touch gesture: a leftward swipe goes to the
// next image, a rightward one to the previous.
func (g *Gallery) HandleSwipe(startX, endX float64) bool {
	if !g.open {
		return false
	}
	diff := startX - endX
	if diff > SwipeThreshold {
		g.Next()
		return true
	}
	if diff < -SwipeThreshold {
		g.Prev()
		return true
	}
	return false
}

// IsOpen reports whether the modal is shown.
func (g *Gallery) IsOpen() bool { return g.open }

// Index returns the current image index; zero while closed.
func (g *Gallery) Index() int { return g.index }

// Len returns the number of images in the open gallery.
func (g *Gallery) Len() int { return len(g.images) }

// Current returns the displayed image.
func (g *Gallery) Current() (memory.ImageAsset, bool) {
	if !g.open {
		return memory.ImageAsset{}, false
	}
	return g.images[g.index], true
}

func (g *Gallery) show() {
	if g.view != nil {
		g.view.Show(g.images[g.index], g.index, len(g.images))
	}
}
