//go:build js
// +build js

package ui

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonic-backdrop/common"
	"github.com/simukka/sonic-backdrop/player"
	"github.com/simukka/sonic-backdrop/webaudio"
)

// Panel is the DOM controls panel bound to a player.
type Panel struct {
	id     string
	p      *player.Player
	root   *js.Object
	toggle *js.Object
	volume *js.Object
	label  *js.Object
	track  *js.Object
	file   *js.Object

	toggling bool
}

// NewPanel renders the controls into mount and binds them to p. It sets
// p.OnChange to keep the toggle label in step.
func NewPanel(mount *js.Object, p *player.Player, track string) (*Panel, error) {
	html, err := RenderControls(ControlsData{
		ID:          "audio-controls",
		ToggleLabel: ToggleLabel(p.Playing()),
		Volume:      p.Volume(),
		Track:       TrackName(track),
	})
	if err != nil {
		return nil, err
	}

	doc := js.Global.Get("document")
	root := doc.Call("createElement", "div")
	root.Set("id", "audio-controls")
	root.Get("style").Set("cssText", PanelCSS())
	root.Set("innerHTML", html)
	mount.Call("appendChild", root)

	panel := &Panel{id: "audio-controls", p: p, root: root}
	panel.toggle = panel.child("toggle")
	panel.volume = panel.child("volume")
	panel.label = panel.child("volume-val")
	panel.track = panel.child("track")
	panel.file = panel.child("file")

	panel.toggle.Call("addEventListener", "click", func(e *js.Object) {
		e.Call("stopPropagation")
		panel.Toggle()
	})
	panel.volume.Call("addEventListener", "input", func(e *js.Object) {
		v := ClampVolume(e.Get("target").Get("value").Float())
		p.SetVolume(v)
		panel.label.Set("textContent", Percent(v))
	})
	panel.file.Call("addEventListener", "change", func(e *js.Object) {
		files := e.Get("target").Get("files")
		if isMissing(files) || files.Length() == 0 {
			return
		}
		f := webaudio.File{Object: files.Index(0)}
		go func() {
			if err := p.LoadFile(f); err != nil {
				common.Warn("controls: cannot load", f.Name(), err)
				return
			}
			panel.track.Set("textContent", f.Name())
		}()
	})

	p.OnChange = panel.SetPlaying
	return panel, nil
}

func (c *Panel) child(suffix string) *js.Object {
	return c.root.Call("querySelector", "#"+c.id+"-"+suffix)
}

// Toggle toggles playback off the event thread. Toggles issued while one is
// still waiting on the browser are dropped.
func (c *Panel) Toggle() {
	if c.toggling {
		return
	}
	c.toggling = true
	go func() {
		defer func() { c.toggling = false }()
		if err := c.p.TogglePlayback(); err != nil {
			common.Debug("controls: toggle failed", err)
		}
	}()
}

// SetVolume clamps v, applies it to the player and syncs the slider.
func (c *Panel) SetVolume(v float64) {
	v = ClampVolume(v)
	c.p.SetVolume(v)
	c.volume.Set("value", v)
	c.label.Set("textContent", Percent(v))
}

// SetPlaying relabels the toggle button.
func (c *Panel) SetPlaying(playing bool) {
	c.toggle.Set("textContent", ToggleLabel(playing))
}

// Remove detaches the panel from the page.
func (c *Panel) Remove() {
	c.p.OnChange = nil
	if parent := c.root.Get("parentNode"); !isMissing(parent) {
		parent.Call("removeChild", c.root)
	}
}
