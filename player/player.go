// Package player implements the audio widget: one playable source routed
// through a gain stage and an analysis stage, with play/pause, volume and
// local file loading.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/common"
)

var (
	// ErrNotAudio is returned by LoadFile for files without an audio/* type.
	ErrNotAudio = errors.New("player: not an audio file")
	// ErrTornDown is returned when Teardown ran while playback was starting.
	ErrTornDown = errors.New("player: torn down")
)

// Graph is the audio graph: source -> gain -> analyser -> output.
type Graph interface {
	// Resume resumes a suspended audio context. Resuming a running context
	// is a no-op.
	Resume() error
	// Play starts the media element. It fails when autoplay is blocked or
	// the source cannot be decoded.
	Play() error
	Pause()
	SetGain(v float64)
	SetSource(url string)
	Analyser() analysis.Analyser
	// Attach places the hidden media element in the document.
	Attach() error
	// Detach removes it again.
	Detach() error
}

// File is a user-selected local file.
type File interface {
	Name() string
	Type() string
}

// ObjectURLs creates and releases object URLs for local files.
type ObjectURLs interface {
	Create(f File) (string, error)
	Revoke(url string)
}

// Player owns one audio graph. It is driven from a single UI thread.
type Player struct {
	// OnChange is called whenever the playing state changes.
	OnChange func(playing bool)

	graph Graph
	urls  ObjectURLs
	link  *analysis.Link
	cfg   Config

	playing       bool
	playRequested bool
	gestureSeen   bool
	volume        float64
	objectURL     string
	analyser      analysis.Analyser
	initialized   bool
	tornDown      bool
}

// New creates a player over graph. The analyser is published on link when
// the player is initialized.
func New(graph Graph, urls ObjectURLs, link *analysis.Link, cfg Config) *Player {
	return &Player{
		graph:  graph,
		urls:   urls,
		link:   link,
		cfg:    cfg,
		volume: cfg.DefaultVolume,
	}
}

// Initialize sets up the default source and gain, attaches the media element
// and publishes the analyser.
func (p *Player) Initialize() {
	if p.initialized {
		return
	}
	p.initialized = true

	p.graph.SetGain(p.volume)
	p.graph.SetSource(p.cfg.DefaultTrack)

	if err := p.graph.Attach(); err != nil {
		common.Warn("player: attach media element:", err.Error())
	}

	p.analyser = p.graph.Analyser()
	p.link.Publish(p.analyser)
	p.playRequested = p.cfg.Autoplay

	common.Debug("player: initialized with", p.cfg.DefaultTrack)
}

// HandleGesture reacts to the first user gesture on the page: it resumes the
// audio context and starts playback if it was requested. Later calls do
// nothing.
func (p *Player) HandleGesture() {
	if p.gestureSeen || p.tornDown {
		return
	}
	p.gestureSeen = true

	if err := p.graph.Resume(); err != nil {
		common.Debug("player: resume on gesture:", err.Error())
		return
	}
	if p.tornDown || !p.playRequested || p.playing {
		return
	}
	if err := p.play(); err != nil {
		// Autoplay restrictions are expected here.
		common.Debug("player: autoplay:", err.Error())
		return
	}
	p.setPlaying(true)
}

// SetVolume applies v to the gain stage immediately. Range checking is left
// to the caller.
func (p *Player) SetVolume(v float64) {
	p.volume = v
	p.graph.SetGain(v)
}

// Volume returns the current gain.
func (p *Player) Volume() float64 {
	return p.volume
}

// Playing reports whether playback is running.
func (p *Player) Playing() bool {
	return p.playing
}

// TogglePlayback pauses if playing; otherwise it resumes the context and
// starts playback. On failure the state is left unchanged.
func (p *Player) TogglePlayback() error {
	if p.tornDown {
		return nil
	}
	if p.playing {
		p.graph.Pause()
		p.setPlaying(false)
		return nil
	}

	if err := p.start(); err != nil {
		if !errors.Is(err, ErrTornDown) {
			common.Warn("Playback error", err.Error())
		}
		return err
	}
	p.setPlaying(true)
	return nil
}

// start resumes the context and plays. Both steps wait on the browser, and
// Teardown may run in between; the player is then left paused.
func (p *Player) start() error {
	if err := p.graph.Resume(); err != nil {
		return fmt.Errorf("resume audio context: %w", err)
	}
	if p.tornDown {
		return ErrTornDown
	}
	return p.play()
}

func (p *Player) play() error {
	if err := p.graph.Play(); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	if p.tornDown {
		p.graph.Pause()
		return ErrTornDown
	}
	return nil
}

// LoadFile switches the source to a local audio file and starts it. The
// object URL of the previously loaded file is released first.
func (p *Player) LoadFile(f File) error {
	if p.tornDown {
		return nil
	}
	if f == nil {
		return nil
	}
	if !strings.HasPrefix(f.Type(), "audio/") {
		return fmt.Errorf("%w: %s (%s)", ErrNotAudio, f.Name(), f.Type())
	}

	p.releaseObjectURL()
	url, err := p.urls.Create(f)
	if err != nil {
		return fmt.Errorf("create object url for %s: %w", f.Name(), err)
	}
	p.objectURL = url
	p.graph.SetSource(url)
	p.playRequested = true

	if err := p.start(); err != nil {
		if !errors.Is(err, ErrTornDown) {
			common.Warn("Playback error", err.Error())
		}
		p.setPlaying(false)
		return err
	}
	p.setPlaying(true)
	common.Debug("player: loaded", f.Name())
	return nil
}

// Teardown pauses playback, detaches the media element and withdraws the
// analyser from the link if it is still the published one.
func (p *Player) Teardown() {
	if p.tornDown {
		return
	}
	p.tornDown = true

	p.graph.Pause()
	p.setPlaying(false)

	// The element may already be gone; removal is best-effort.
	if err := p.graph.Detach(); err != nil {
		common.Debug("player: detach:", err.Error())
	}
	if p.analyser != nil {
		p.link.Release(p.analyser)
	}
	p.releaseObjectURL()
}

func (p *Player) releaseObjectURL() {
	if p.objectURL == "" {
		return
	}
	p.urls.Revoke(p.objectURL)
	p.objectURL = ""
}

func (p *Player) setPlaying(playing bool) {
	changed := p.playing != playing
	p.playing = playing
	if changed && p.OnChange != nil {
		p.OnChange(playing)
	}
}
