package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Defaults matching a freshly created Web Audio AnalyserNode.
const (
	DefaultSmoothing   = 0.8
	DefaultMinDecibels = -100.0
	DefaultMaxDecibels = -30.0
)

// FFTAnalyser is a native analysis stage with AnalyserNode semantics: a
// Blackman-windowed FFT over the most recent fftSize samples, smoothed over
// time and mapped from decibels onto bytes.
type FFTAnalyser struct {
	Smoothing   float64
	MinDecibels float64
	MaxDecibels float64

	fftSize  int
	samples  []float64 // sliding window, oldest first
	coeffs   []float64
	smoothed []float64
	scratch  []float64
}

// NewFFTAnalyser creates an analyser over fftSize samples. fftSize should be
// a power of two.
func NewFFTAnalyser(fftSize int) *FFTAnalyser {
	return &FFTAnalyser{
		Smoothing:   DefaultSmoothing,
		MinDecibels: DefaultMinDecibels,
		MaxDecibels: DefaultMaxDecibels,
		fftSize:     fftSize,
		samples:     make([]float64, fftSize),
		coeffs:      blackman(fftSize),
		smoothed:    make([]float64, fftSize/2),
		scratch:     make([]float64, fftSize),
	}
}

// FFTSize returns the analysis window length.
func (a *FFTAnalyser) FFTSize() int {
	return a.fftSize
}

// FrequencyBinCount is half the FFT size.
func (a *FFTAnalyser) FrequencyBinCount() int {
	return a.fftSize / 2
}

// Write pushes mono samples in [-1,1] into the analysis window.
func (a *FFTAnalyser) Write(samples []float64) {
	if len(samples) >= a.fftSize {
		copy(a.samples, samples[len(samples)-a.fftSize:])
		return
	}
	keep := a.fftSize - len(samples)
	copy(a.samples, a.samples[len(samples):])
	copy(a.samples[keep:], samples)
}

// ByteFrequencyData computes a new smoothed spectrum and writes it as bytes.
// Each call advances the smoothing state, as it does on an AnalyserNode.
func (a *FFTAnalyser) ByteFrequencyData(dst []byte) {
	for i, s := range a.samples {
		a.scratch[i] = s * a.coeffs[i]
	}
	spectrum := fft.FFTReal(a.scratch)

	rangeDb := a.MaxDecibels - a.MinDecibels
	n := float64(a.fftSize)
	for k := range a.smoothed {
		re, im := real(spectrum[k]), imag(spectrum[k])
		mag := math.Sqrt(re*re+im*im) / n
		a.smoothed[k] = a.Smoothing*a.smoothed[k] + (1-a.Smoothing)*mag

		if k >= len(dst) {
			continue
		}
		db := math.Inf(-1)
		if a.smoothed[k] > 0 {
			db = 20 * math.Log10(a.smoothed[k])
		}
		scaled := MaxByte / rangeDb * (db - a.MinDecibels)
		switch {
		case scaled <= 0 || math.IsNaN(scaled):
			dst[k] = 0
		case scaled >= MaxByte:
			dst[k] = MaxByte
		default:
			dst[k] = byte(scaled)
		}
	}
}

// blackman returns the periodic Blackman window of length n, the one an
// AnalyserNode applies (denominator n rather than n-1).
func blackman(n int) []float64 {
	return window.Blackman(n + 1)[:n]
}
