package journey

import "memorylane/internal/memory"

type queuedFrames struct {
	queue []func()
}

func (q *queuedFrames) RequestFrame(fn func()) { q.queue = append(q.queue, fn) }

func (q *queuedFrames) flush() {
	pending := q.queue
	q.queue = nil
	for _, fn := range pending {
		fn()
	}
}

type staticLayout Layout

func (l staticLayout) Layout() Layout { return Layout(l) }

type recordingRenderer struct {
	train  []float64
	layers map[int]float64
	hint   []bool
}

func (r *recordingRenderer) MoveTrain(percent float64) { r.train = append(r.train, percent) }

func (r *recordingRenderer) OffsetLayer(index int, px float64) {
	if r.layers == nil {
		r.layers = make(map[int]float64)
	}
	r.layers[index] = px
}

func (r *recordingRenderer) SetHintVisible(visible bool) { r.hint = append(r.hint, visible) }

type manualScroll struct {
	subscribers map[int]func(float64)
	next        int
}

func (m *manualScroll) Subscribe(fn func(float64)) func() {
	if m.subscribers == nil {
		m.subscribers = make(map[int]func(float64))
	}
	id := m.next
	m.next++
	m.subscribers[id] = fn
	return func() { delete(m.subscribers, id) }
}

func (m *manualScroll) emit(offset float64) {
	for _, fn := range m.subscribers {
		fn(offset)
	}
}

type watcher struct {
	observed   map[string]float64
	unobserved []string
}

func (w *watcher) Observe(id string, threshold float64) {
	if w.observed == nil {
		w.observed = make(map[string]float64)
	}
	w.observed[id] = threshold
}

func (w *watcher) Unobserve(id string) {
	delete(w.observed, id)
	w.unobserved = append(w.unobserved, id)
}

type rewardLog struct {
	rewards []Reward
}

func (r *rewardLog) Emit(reward Reward) { r.rewards = append(r.rewards, reward) }

type viewCall struct {
	index int
	count int
	name  string
}

type modalView struct {
	headers      [][2]string
	shown        []viewCall
	scrollLocked bool
	hidden       int
}

func (v *modalView) Show(image memory.ImageAsset, index, count int) {
	v.shown = append(v.shown, viewCall{index: index, count: count, name: image.Name})
}

func (v *modalView) SetHeader(title, date string) {
	v.headers = append(v.headers, [2]string{title, date})
}

func (v *modalView) SetScrollLocked(locked bool) { v.scrollLocked = locked }

func (v *modalView) Hide() { v.hidden++ }

func images(n int) []memory.ImageAsset {
	out := make([]memory.ImageAsset, n)
	for i := range out {
		out[i] = memory.ImageAsset{Name: string(rune('a' + i))}
	}
	return out
}
