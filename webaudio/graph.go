//go:build js
// +build js

// Package webaudio implements the player's audio graph on the Web Audio API.
package webaudio

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/player"
)

var (
	// ErrNoAudioContext is returned when the browser has no Web Audio support.
	ErrNoAudioContext = errors.New("webaudio: AudioContext not available")

	errNotDOMFile = errors.New("webaudio: file is not a DOM File")
)

// MediaGraph routes an <audio> element through gain and analyser nodes to
// the context destination.
type MediaGraph struct {
	ctx      *js.Object
	element  *js.Object
	source   *js.Object
	gain     *js.Object
	analyser *Analyser
	mount    *js.Object
}

// NewMediaGraph builds the graph. The element is created detached; Attach
// places it under mount.
func NewMediaGraph(cfg player.Config, mount *js.Object) (*MediaGraph, error) {
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return nil, ErrNoAudioContext
	}

	g := &MediaGraph{
		ctx:   audioCtx.New(),
		mount: mount,
	}

	doc := js.Global.Get("document")
	g.element = doc.Call("createElement", "audio")
	g.element.Set("crossOrigin", "anonymous")
	g.element.Set("loop", cfg.Loop)
	g.element.Set("preload", "auto")
	g.element.Get("style").Set("display", "none")

	g.source = g.ctx.Call("createMediaElementSource", g.element)
	g.gain = g.ctx.Call("createGain")
	g.gain.Get("gain").Set("value", cfg.DefaultVolume)

	node := g.ctx.Call("createAnalyser")
	node.Set("fftSize", cfg.FFTSize)
	node.Set("smoothingTimeConstant", cfg.Smoothing)
	g.analyser = newAnalyser(node)

	// source -> gain -> analyser -> destination
	g.source.Call("connect", g.gain)
	g.gain.Call("connect", node)
	node.Call("connect", g.ctx.Get("destination"))

	return g, nil
}

// Resume resumes a suspended context.
func (g *MediaGraph) Resume() error {
	if g.ctx.Get("state").String() != "suspended" {
		return nil
	}
	return await(g.ctx.Call("resume"))
}

// Play starts the element and waits for the play() promise.
func (g *MediaGraph) Play() error {
	return await(g.element.Call("play"))
}

// Pause pauses the element.
func (g *MediaGraph) Pause() {
	g.element.Call("pause")
}

// SetGain sets the gain node's value.
func (g *MediaGraph) SetGain(v float64) {
	g.gain.Get("gain").Set("value", v)
}

// SetSource points the element at url.
func (g *MediaGraph) SetSource(url string) {
	g.element.Set("src", url)
}

// Analyser returns the analysis stage.
func (g *MediaGraph) Analyser() analysis.Analyser {
	return g.analyser
}

// Attach appends the hidden element to the mount point so autoplay is
// allowed after a user gesture.
func (g *MediaGraph) Attach() (err error) {
	defer recoverJS(&err)
	g.mount.Call("appendChild", g.element)
	return nil
}

// Detach removes the element from the mount point.
func (g *MediaGraph) Detach() (err error) {
	defer recoverJS(&err)
	g.mount.Call("removeChild", g.element)
	return nil
}

// Close releases the audio context.
func (g *MediaGraph) Close() {
	g.ctx.Call("close")
}

// await blocks the calling goroutine until promise settles. It must not be
// called from a JS event callback directly; start a goroutine first.
func await(promise *js.Object) error {
	if promise == nil || promise == js.Undefined {
		return nil
	}
	done := make(chan error, 1)
	promise.Call("then",
		func() { done <- nil },
		func(reason *js.Object) { done <- &js.Error{Object: reason} },
	)
	return <-done
}

func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(*js.Error); ok {
		*err = jsErr
		return
	}
	panic(r)
}
