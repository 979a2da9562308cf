//go:build js
// +build js

package ui

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonic-backdrop/common"
	"github.com/simukka/sonic-backdrop/visual"
)

const redrawEvery = 15

// StatsOverlay shows the backdrop stats in a fixed div.
type StatsOverlay struct {
	el      *js.Object
	visible bool
	frames  int
}

// NewStatsOverlay appends a hidden overlay to the document body.
func NewStatsOverlay() *StatsOverlay {
	doc := js.Global.Get("document")
	el := doc.Call("createElement", "div")
	el.Set("id", "backdrop-stats")
	el.Get("style").Set("cssText", OverlayCSS())
	doc.Get("body").Call("appendChild", el)
	return &StatsOverlay{el: el}
}

// Update redraws the overlay from b every redrawEvery frames, and at once
// when it becomes visible. It is registered as a backdrop frame hook.
func (o *StatsOverlay) Update(b *visual.Backdrop) {
	shown := false
	if b.Stats.Visible != o.visible {
		o.visible = b.Stats.Visible
		shown = o.visible
		display := "none"
		if o.visible {
			display = "block"
		}
		o.el.Get("style").Set("display", display)
	}
	if !o.visible {
		return
	}
	o.frames++
	if !shown && o.frames%redrawEvery != 0 {
		return
	}
	html, err := RenderStats(b.Stats.Lines(b.Scene))
	if err != nil {
		common.Error("stats:", err)
		return
	}
	o.el.Set("innerHTML", html)
}

// Remove detaches the overlay.
func (o *StatsOverlay) Remove() {
	if parent := o.el.Get("parentNode"); !isMissing(parent) {
		parent.Call("removeChild", o.el)
	}
}
