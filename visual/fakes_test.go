package visual

import (
	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/common"
)

// constAnalyser fills every bin with value.
type constAnalyser struct {
	bins  int
	value byte
}

func (c *constAnalyser) FrequencyBinCount() int { return c.bins }

func (c *constAnalyser) ByteFrequencyData(dst []byte) {
	for i := range dst {
		dst[i] = c.value
	}
}

// manualScheduler records requests; tests fire them by hand.
type manualScheduler struct {
	nextID    int
	pending   map[int]func(float64)
	cancelled []int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[int]func(float64))}
}

func (m *manualScheduler) RequestFrame(fn func(ts float64)) int {
	m.nextID++
	m.pending[m.nextID] = fn
	return m.nextID
}

func (m *manualScheduler) CancelFrame(id int) {
	delete(m.pending, id)
	m.cancelled = append(m.cancelled, id)
}

// fire runs every pending callback once at ts, as one display refresh would.
func (m *manualScheduler) fire(ts float64) int {
	due := m.pending
	m.pending = make(map[int]func(float64))
	for _, fn := range due {
		fn(ts)
	}
	return len(due)
}

type fakeRenderer struct {
	attached bool
	renders  int
	resizes  int
	disposed int
	lastW    float64
	lastH    float64
	aspect   float64
}

func (r *fakeRenderer) Resize(s *Scene) {
	r.resizes++
	r.lastW, r.lastH = s.Uniforms.Resolution[0], s.Uniforms.Resolution[1]
	r.aspect = s.Camera.Aspect
}

func (r *fakeRenderer) Render(s *Scene, dt float64) {
	r.renders++
}

func (r *fakeRenderer) Dispose() {
	r.disposed++
	r.attached = false
}

func newTestScene(link *analysis.Link) *Scene {
	return NewScene(1280, 720, link, DefaultMapping(), common.NewSeededRNG(99))
}
