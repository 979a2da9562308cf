package analysis

// MaxByte is the largest magnitude an analyser reports.
const MaxByte = 255

// FrequencySnapshot is one frame of byte magnitudes. It is refilled in place
// every frame and must not be retained across frames.
type FrequencySnapshot []byte

// Fill resizes s to min(a.FrequencyBinCount(), max) and copies the analyser's
// current spectrum into it.
func (s *FrequencySnapshot) Fill(a Analyser, max int) {
	n := a.FrequencyBinCount()
	if n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	if cap(*s) < n {
		*s = make(FrequencySnapshot, n)
	}
	*s = (*s)[:n]
	a.ByteFrequencyData(*s)
}

// Range is a half-open range of bins [From, To).
type Range struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Empty reports whether the range covers no bins.
func (r Range) Empty() bool {
	return r.To <= r.From
}

// Mean is the average magnitude over r normalized to [0,1]. The range is
// clamped to the snapshot; an empty clamped range yields 0.
func (s FrequencySnapshot) Mean(r Range) float64 {
	from, to := r.From, r.To
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if to <= from {
		return 0
	}

	sum := 0
	for _, v := range s[from:to] {
		sum += int(v)
	}
	return float64(sum) / float64(to-from) / MaxByte
}

// Bands holds the per-frame band energies, each in [0,1].
type Bands struct {
	Low float64
	Mid float64
}

// BandEnergies averages the low and mid ranges of s.
func BandEnergies(s FrequencySnapshot, low, mid Range) Bands {
	return Bands{
		Low: s.Mean(low),
		Mid: s.Mean(mid),
	}
}
