// Package visual models the audio-reactive backdrop: a shader-driven
// full-screen plane, a particle field and a bloom + pixel-shift post chain,
// all driven by the spectrum of the published analyser.
package visual

import (
	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/common"
)

// Uniforms are the values fed to the plane's fragment shader.
type Uniforms struct {
	Time        float64
	Resolution  [2]float64
	SampleCoord ShaderSamples
}

// BloomParams configure the bloom pass.
type BloomParams struct {
	Threshold float64
	Strength  float64
	Radius    float64
}

// Scene is the per-mount state of the backdrop. Update mutates it once per
// frame; a Renderer reads it.
type Scene struct {
	Mapping   *Mapping
	Camera    *Camera
	Uniforms  Uniforms
	Particles *Field
	Bloom     BloomParams
	RGBShift  float64

	// AudioTexture is the 1-D spectrum texture. AudioDirty is set when it
	// changed since the renderer last uploaded it.
	AudioTexture []byte
	AudioDirty   bool
	// PositionsDirty is set when particle positions changed.
	PositionsDirty bool

	// Bands holds the last computed energies; zero while no analyser is
	// present.
	Bands    analysis.Bands
	Reactive bool

	// Seed is the particle layout seed.
	Seed uint32

	link     *analysis.Link
	snapshot analysis.FrequencySnapshot
}

// NewScene builds the scene for a w x h viewport. link may be empty or nil;
// the scene then renders without audio reactivity.
func NewScene(w, h int, link *analysis.Link, m *Mapping, rng *common.SeededRNG) *Scene {
	s := &Scene{
		Mapping:   m,
		Camera:    NewCamera(w, h),
		Particles: NewField(m.Particles, rng),
		Bloom: BloomParams{
			Threshold: m.Bloom.Threshold,
			Strength:  m.Bloom.BaseStrength,
			Radius:    m.Bloom.Radius,
		},
		RGBShift:     m.RGBShift.BaseAmount,
		AudioTexture: make([]byte, m.Texture.Width),
		AudioDirty:   true,
		link:         link,
		Seed:         rng.Seed(),
	}
	s.Uniforms.Resolution = [2]float64{float64(w), float64(h)}
	s.Uniforms.SampleCoord = m.Shader
	return s
}

// Update advances the scene by dt seconds. now is the wall-clock frame time
// in milliseconds and drives the particle oscillation.
func (s *Scene) Update(dt, now float64) {
	if a, ok := s.link.Current(); ok {
		s.react(a, now)
	} else if s.Reactive {
		s.silence()
	}
	s.Uniforms.Time += dt
}

func (s *Scene) react(a analysis.Analyser, now float64) {
	s.Reactive = true
	s.snapshot.Fill(a, len(s.AudioTexture))
	n := copy(s.AudioTexture, s.snapshot)
	zero(s.AudioTexture[n:])
	s.AudioDirty = true

	m := s.Mapping
	s.Bands = analysis.BandEnergies(s.snapshot, m.Bands.Low, m.Bands.Mid)

	s.Particles.Displace(now, m.DriftScale(s.Bands.Low))
	s.PositionsDirty = true

	s.Particles.Size = m.PointSize(s.Bands.Mid)
	s.RGBShift = m.RGBShiftAmount(s.Bands.Mid)
	s.Bloom.Strength = m.BloomStrength(s.Bands.Low)
}

// silence drops back to the static look once the analyser goes away.
func (s *Scene) silence() {
	s.Reactive = false
	s.Bands = analysis.Bands{}
	zero(s.AudioTexture)
	s.AudioDirty = true

	m := s.Mapping
	s.Particles.Size = m.Particles.BaseSize
	s.RGBShift = m.RGBShift.BaseAmount
	s.Bloom.Strength = m.Bloom.BaseStrength
}

// Resize updates the camera aspect and the resolution uniform together.
func (s *Scene) Resize(w, h int) {
	s.Camera.SetViewport(w, h)
	s.Uniforms.Resolution = [2]float64{float64(w), float64(h)}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
