package journey

import (
	"math"
	"math/rand/v2"
	"time"

	"memorylane/internal/memory"
)

const (
	// UnlockThreshold is the visible fraction of a station that unlocks it.
	UnlockThreshold = 0.3
	// ParticleCount is the number of particles in one reward burst.
	ParticleCount = 20
	// ParticleLifetime is how long reward particles stay on the page.
	ParticleLifetime = time.Second

	particleMinVelocity    = 100
	particleVelocitySpread = 100
)

// VisibilitySource watches station elements for viewport intersection.
type VisibilitySource interface {
	Observe(stationID string, threshold float64)
	Unobserve(stationID string)
}

// Point is a page coordinate in pixels.
type Point struct {
	X float64
	Y float64
}

// Rect is a viewport-relative bounding box.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// MarkerOrigin returns the page coordinate of the centre of a station marker
// whose viewport box is r, with the page scrolled by scroll.
func MarkerOrigin(r Rect, scroll Point) Point {
	return Point{
		X: r.Left + r.Width/2 + scroll.X,
		Y: r.Top + r.Height/2 + scroll.Y,
	}
}

// VisibilityEvent reports how much of a station is inside the viewport.
// Origin is the station marker position used for the reward burst.
type VisibilityEvent struct {
	StationID string
	Ratio     float64
	Origin    Point
}

// Particle is one element of a reward burst. DX and DY are the final
// displacement after Lifetime.
type Particle struct {
	Angle    float64
	Velocity float64
	DX       float64
	DY       float64
}

// Reward is the one-shot effect emitted when a station unlocks.
type Reward struct {
	StationID string
	Origin    Point
	Particles []Particle
	Lifetime  time.Duration
}

// RewardSink renders reward bursts.
type RewardSink interface {
	Emit(reward Reward)
}

// UnlockOption customizes an UnlockMachine.
type UnlockOption func(*UnlockMachine)

// WithRandom replaces the velocity jitter source; fn must return values in [0, 1).
func WithRandom(fn func() float64) UnlockOption {
	return func(m *UnlockMachine) {
		if fn != nil {
			m.random = fn
		}
	}
}

// WithUnlockHook registers fn to run after each locked to unlocked transition.
func WithUnlockHook(fn func(stationID string)) UnlockOption {
	return func(m *UnlockMachine) {
		m.onUnlock = fn
	}
}

// UnlockMachine tracks the one-way locked to unlocked transition of every
// station.
type UnlockMachine struct {
	visibility VisibilitySource
	sink       RewardSink
	random     func() float64
	onUnlock   func(string)

	unlocked map[string]bool
	order    []string
}

// NewUnlockMachine builds a machine. visibility and sink may be nil.
func NewUnlockMachine(visibility VisibilitySource, sink RewardSink, opts ...UnlockOption) *UnlockMachine {
	m := &UnlockMachine{
		visibility: visibility,
		sink:       sink,
		random:     rand.Float64,
		unlocked:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register records stations and starts observing the locked ones. Stations
// registered twice keep their first state.
func (m *UnlockMachine) Register(stations []memory.MemoryStation) {
	for _, st := range stations {
		if _, known := m.unlocked[st.ID]; known {
			continue
		}
		m.unlocked[st.ID] = st.Unlocked
		m.order = append(m.order, st.ID)
		if !st.Unlocked && m.visibility != nil {
			m.visibility.Observe(st.ID, UnlockThreshold)
		}
	}
}

// HandleVisibility applies ev and reports whether it unlocked a station.
func (m *UnlockMachine) HandleVisibility(ev VisibilityEvent) bool {
	unlocked, known := m.unlocked[ev.StationID]
	if !known || unlocked || ev.Ratio < UnlockThreshold {
		return false
	}
	m.unlocked[ev.StationID] = true
	if m.visibility != nil {
		m.visibility.Unobserve(ev.StationID)
	}
	if m.sink != nil {
		m.sink.Emit(m.burst(ev))
	}
	if m.onUnlock != nil {
		m.onUnlock(ev.StationID)
	}
	return true
}

func (m *UnlockMachine) burst(ev VisibilityEvent) Reward {
	particles := make([]Particle, ParticleCount)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / ParticleCount
		velocity := particleMinVelocity + m.random()*particleVelocitySpread
		particles[i] = Particle{
			Angle:    angle,
			Velocity: velocity,
			DX:       math.Cos(angle) * velocity,
			DY:       math.Sin(angle) * velocity,
		}
	}
	return Reward{StationID: ev.StationID, Origin: ev.Origin, Particles: particles, Lifetime: ParticleLifetime}
}

// Unlocked reports whether id is unlocked. Unknown stations are locked.
func (m *UnlockMachine) Unlocked(id string) bool {
	return m.unlocked[id]
}

// Pending lists the stations still locked, in registration order.
func (m *UnlockMachine) Pending() []string {
	var out []string
	for _, id := range m.order {
		if !m.unlocked[id] {
			out = append(out, id)
		}
	}
	return out
}
