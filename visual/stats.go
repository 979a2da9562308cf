package visual

import "strconv"

// Stats tracks frame rate and exposes the live mapping values for the
// overlay.
type Stats struct {
	Visible bool

	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64
}

// StatLine is one label/value row of the overlay.
type StatLine struct {
	Label string
	Value string
}

// NewStats creates a hidden stats tracker.
func NewStats() *Stats {
	return &Stats{}
}

// Toggle toggles overlay visibility.
func (s *Stats) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS counts a frame at currentTime (ms) and refreshes the rate once a
// second.
func (s *Stats) UpdateFPS(now float64) {
	s.FrameCount++
	if window := now - s.LastFPSUpdate; window >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) * 1000 / window
		s.FrameCount, s.LastFPSUpdate = 0, now
	}
}

// Lines returns the overlay rows for scene.
func (s *Stats) Lines(scene *Scene) []StatLine {
	reactive := "no analyser"
	if scene.Reactive {
		reactive = "live"
	}
	return []StatLine{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64)},
		{"Audio", reactive},
		{"Low", strconv.FormatFloat(scene.Bands.Low, 'f', 3, 64)},
		{"Mid", strconv.FormatFloat(scene.Bands.Mid, 'f', 3, 64)},
		{"Bloom", strconv.FormatFloat(scene.Bloom.Strength, 'f', 3, 64)},
		{"Point size", strconv.FormatFloat(scene.Particles.Size, 'f', 2, 64)},
		{"RGB shift", strconv.FormatFloat(scene.RGBShift, 'f', 4, 64)},
		{"Time", strconv.FormatFloat(scene.Uniforms.Time, 'f', 2, 64)},
		{"Seed", strconv.FormatUint(uint64(scene.Seed), 10)},
		{"Viewport", strconv.Itoa(int(scene.Uniforms.Resolution[0])) + "x" + strconv.Itoa(int(scene.Uniforms.Resolution[1]))},
	}
}
