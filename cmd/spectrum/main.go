//go:build !js
// +build !js

// Command spectrum decodes an MP3 and prints, per animation frame, the band
// energies and the backdrop parameters they map to.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/player"
	"github.com/simukka/sonic-backdrop/visual"
)

func main() {
	in := flag.String("in", "", "MP3 file to analyse")
	fps := flag.Int("fps", 60, "Animation frames per second")
	every := flag.Int("every", 30, "Print every Nth frame")
	mappingPath := flag.String("mapping", "", "YAML mapping table (defaults to the built-in one)")
	play := flag.Bool("play", false, "Play the file and print frames in real time")
	fftSize := flag.Int("fft", player.DefaultConfig.FFTSize, "Analyser FFT size")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *fps < 1 {
		log.Fatalf("invalid -fps %d", *fps)
	}
	if *every < 1 {
		*every = 1
	}

	m, err := loadMapping(*mappingPath)
	if err != nil {
		log.Fatal(err)
	}

	pcm, sampleRate, err := decode(*in)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Decoded %s: %d Hz, %.1fs", *in, sampleRate, float64(len(pcm))/4/float64(sampleRate))

	a := analysis.NewFFTAnalyser(*fftSize)
	a.Smoothing = player.DefaultConfig.Smoothing
	log.Printf("Analysing at %d fps, fft size %d, %d bins", *fps, a.FFTSize(), a.FrequencyBinCount())
	frames := Frames(Monophonic(pcm, 2), sampleRate, *fps, a, m)

	if *play {
		if err := playAlong(pcm, sampleRate, *fps, *every, frames); err != nil {
			log.Fatal(err)
		}
		return
	}

	WriteHeader(os.Stdout)
	for _, f := range frames {
		if f.Index%*every == 0 {
			WriteFrame(os.Stdout, f)
		}
	}
}

func loadMapping(path string) (*visual.Mapping, error) {
	if path == "" {
		return visual.DefaultMapping(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := visual.LoadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// decode returns the file as 16-bit stereo PCM.
func decode(path string) ([]byte, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return pcm, d.SampleRate(), nil
}

func playAlong(pcm []byte, sampleRate, fps, every int, frames []Frame) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return err
	}
	<-ready

	p := ctx.NewPlayer(bytes.NewReader(pcm))
	defer p.Close()
	p.Play()

	WriteHeader(os.Stdout)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for _, f := range frames {
		<-ticker.C
		if f.Index%every == 0 {
			WriteFrame(os.Stdout, f)
		}
		if !p.IsPlaying() {
			break
		}
	}
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return p.Err()
}
