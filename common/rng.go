package common

// SeededRNG is a Mulberry32 generator. The backdrop seeds it once per mount so
// a given seed always lays out the same particle field.
type SeededRNG struct {
	state uint32
	seed  uint32
}

// NewSeededRNG creates a generator starting at seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed, seed: seed}
}

// Seed returns the seed the generator was created with.
func (r *SeededRNG) Seed() uint32 {
	return r.seed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	return float64(r.next()) / (1 << 32)
}

// next advances the Mulberry32 state and returns 32 mixed bits.
func (r *SeededRNG) next() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	return z ^ z>>14
}

// Centered returns a value in [-span/2, span/2).
func (r *SeededRNG) Centered(span float64) float64 {
	return (r.Random() - 0.5) * span
}
