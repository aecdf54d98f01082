package journey

import (
	"fmt"
	"slices"

	"memorylane/internal/memory"
)

// Deps are the browser capabilities a Journey is built from. Any of them may
// be nil, in which case the matching behavior is skipped.
type Deps struct {
	Frames     FrameScheduler
	Layout     LayoutSource
	Renderer   ScrollRenderer
	Scroll     ScrollSource
	Visibility VisibilitySource
	Rewards    RewardSink
	Gallery    GalleryView
	// OnUnlock runs after a station unlocks so the page can flip its card.
	OnUnlock func(stationID string)
}

// Journey is the application state of one album page: its stations and the
// three state machines that animate them.
type Journey struct {
	stations []memory.MemoryStation
	byID     map[string]int

	Scroll  *ScrollEngine
	Unlocks *UnlockMachine
	Gallery *Gallery

	detach func()
}

// New wires the state machines for stations and starts listening for scroll
// events.
func New(stations []memory.MemoryStation, deps Deps) *Journey {
	j := &Journey{
		stations: slices.Clone(stations),
		byID:     make(map[string]int, len(stations)),
		Scroll:   NewScrollEngine(deps.Frames, deps.Layout, deps.Renderer),
		Gallery:  NewGallery(deps.Gallery),
	}
	for i, st := range j.stations {
		j.byID[st.ID] = i
	}
	j.Unlocks = NewUnlockMachine(deps.Visibility, deps.Rewards, WithUnlockHook(func(id string) {
		if i, ok := j.byID[id]; ok {
			j.stations[i].Unlocked = true
		}
		if deps.OnUnlock != nil {
			deps.OnUnlock(id)
		}
	}))
	j.Unlocks.Register(j.stations)
	j.detach = j.Scroll.Attach(deps.Scroll)
	return j
}

// Stations returns the stations with their current lock state.
func (j *Journey) Stations() []memory.MemoryStation {
	return j.stations
}

// OpenStation opens the gallery on the images of an unlocked station.
func (j *Journey) OpenStation(id string) error {
	i, ok := j.byID[id]
	if !ok {
		return fmt.Errorf("open station %q: unknown station", id)
	}
	if !j.Unlocks.Unlocked(id) {
		return fmt.Errorf("open station %q: %w", id, ErrLocked)
	}
	return j.Gallery.OpenStation(j.stations[i])
}

// Close stops listening for scroll events and closes the gallery.
func (j *Journey) Close() {
	if j.detach != nil {
		j.detach()
		j.detach = nil
	}
	j.Gallery.Close()
}
