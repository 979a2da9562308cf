package visual

import (
	"math"

	"github.com/simukka/sonic-backdrop/common"
)

// Field is the particle cloud. Positions and Colors are packed xyz / rgb
// triples laid out the way the GPU buffers expect them.
type Field struct {
	Positions []float32
	Colors    []float32
	Size      float64
	Opacity   float64
}

// NewField scatters count particles uniformly in a cube of side spread, each
// with a random hue.
func NewField(p ParticleMapping, rng *common.SeededRNG) *Field {
	f := &Field{
		Positions: make([]float32, p.Count*3),
		Colors:    make([]float32, p.Count*3),
		Size:      p.BaseSize,
		Opacity:   p.Opacity,
	}
	for i := 0; i < p.Count; i++ {
		f.Positions[i*3] = float32(rng.Centered(p.Spread))
		f.Positions[i*3+1] = float32(rng.Centered(p.Spread))
		f.Positions[i*3+2] = float32(rng.Centered(p.Spread))

		c := HSL(rng.Random(), p.Saturation, p.Lightness)
		f.Colors[i*3] = float32(c.R)
		f.Colors[i*3+1] = float32(c.G)
		f.Colors[i*3+2] = float32(c.B)
	}
	return f
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.Positions) / 3
}

// Z returns the depth coordinate of particle i.
func (f *Field) Z(i int) float32 {
	return f.Positions[i*3+2]
}

// Displace moves every particle along z by its own oscillation at wall-clock
// time now (ms), multiplied by scale.
func (f *Field) Displace(now, scale float64) {
	t := now * 0.001
	for i := 0; i < f.Len(); i++ {
		f.Positions[i*3+2] += float32(math.Sin(float64(i)+t) * scale)
	}
}
