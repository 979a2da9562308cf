//go:build !js
// +build !js

package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/visual"
)

// Frame is the backdrop state derived from one animation frame of audio.
type Frame struct {
	Index     int
	Time      float64 // seconds
	Bands     analysis.Bands
	Bloom     float64
	PointSize float64
	RGBShift  float64
	Drift     float64
}

// Monophonic converts interleaved signed 16-bit little-endian PCM to mono
// samples in [-1, 1].
func Monophonic(pcm []byte, channels int) []float64 {
	frameBytes := 2 * channels
	out := make([]float64, len(pcm)/frameBytes)
	for i := range out {
		var sum float64
		for c := 0; c < channels; c++ {
			off := i*frameBytes + c*2
			sum += float64(int16(binary.LittleEndian.Uint16(pcm[off:]))) / 32768
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// Frames runs samples through a at fps frames per second and maps each
// frame's bands through m.
func Frames(samples []float64, sampleRate, fps int, a *analysis.FFTAnalyser, m *visual.Mapping) []Frame {
	if fps <= 0 || sampleRate <= 0 {
		return nil
	}
	var snap analysis.FrequencySnapshot
	frames := make([]Frame, 0, len(samples)*fps/sampleRate+1)
	for i := 0; ; i++ {
		start := i * sampleRate / fps
		end := (i + 1) * sampleRate / fps
		if start >= len(samples) {
			break
		}
		if end > len(samples) {
			end = len(samples)
		}
		a.Write(samples[start:end])
		snap.Fill(a, m.Texture.Width)
		bands := analysis.BandEnergies(snap, m.Bands.Low, m.Bands.Mid)
		frames = append(frames, Frame{
			Index:     i,
			Time:      float64(i) / float64(fps),
			Bands:     bands,
			Bloom:     m.BloomStrength(bands.Low),
			PointSize: m.PointSize(bands.Mid),
			RGBShift:  m.RGBShiftAmount(bands.Mid),
			Drift:     m.DriftScale(bands.Low),
		})
	}
	return frames
}

// WriteHeader writes the column header for WriteFrame.
func WriteHeader(w io.Writer) {
	fmt.Fprintf(w, "%6s %8s %6s %6s %6s %6s %7s %6s\n",
		"frame", "time", "low", "mid", "bloom", "size", "shift", "drift")
}

// WriteFrame writes one row.
func WriteFrame(w io.Writer, f Frame) {
	fmt.Fprintf(w, "%6d %8.3f %6.3f %6.3f %6.3f %6.2f %7.4f %6.3f\n",
		f.Index, f.Time, f.Bands.Low, f.Bands.Mid, f.Bloom, f.PointSize, f.RGBShift, f.Drift)
}
