//go:build js
// +build js

package main

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonic-backdrop/analysis"
	"github.com/simukka/sonic-backdrop/common"
	"github.com/simukka/sonic-backdrop/player"
	"github.com/simukka/sonic-backdrop/three"
	"github.com/simukka/sonic-backdrop/ui"
	"github.com/simukka/sonic-backdrop/visual"
	"github.com/simukka/sonic-backdrop/webaudio"
)

const visualMountID = "visual-root"

func main() {
	common.EnableDebug = strings.Contains(js.Global.Get("location").Get("search").String(), "debug")

	link := analysis.NewLink()
	cfg := player.DefaultConfig

	// Audio first, so the analyser is published before the first frame.
	var (
		graph *webaudio.MediaGraph
		p     *player.Player
		panel *ui.Panel
	)
	audioMount := ui.Mount(cfg.MountID)
	graph, err := webaudio.NewMediaGraph(cfg, audioMount)
	if err != nil {
		common.Warn("audio disabled:", err)
	} else {
		p = player.New(graph, webaudio.ObjectURLs{}, link, cfg)
		p.Initialize()
		if panel, err = ui.NewPanel(audioMount, p, cfg.DefaultTrack); err != nil {
			common.Error("controls:", err)
		}
	}
	removeGesture := ui.OnFirstGesture(func() {
		if p != nil {
			go p.HandleGesture()
		}
	})

	var backdrop *visual.Backdrop
	w, h := ui.Viewport()
	rng := common.NewSeededRNG(uint32(js.Global.Get("Date").Call("now").Int64()))
	scene := visual.NewScene(w, h, link, visual.DefaultMapping(), rng)
	renderer, err := three.New(ui.Mount(visualMountID), scene)
	if err != nil {
		common.Warn("backdrop disabled:", err)
	} else {
		backdrop = visual.NewBackdrop(scene, renderer, ui.AnimationFrames{})
		overlay := ui.NewStatsOverlay()
		backdrop.OnFrame(overlay.Update)
		backdrop.OnTeardown(overlay.Remove)
		backdrop.OnTeardown(ui.OnResize(backdrop.Resize))
		backdrop.Start(ui.Now())
	}

	toggle := func() {
		switch {
		case panel != nil:
			panel.Toggle()
		case p != nil:
			go p.TogglePlayback()
		}
	}

	setVolume := func(v float64) {
		switch {
		case panel != nil:
			panel.SetVolume(v)
		case p != nil:
			p.SetVolume(ui.ClampVolume(v))
		}
	}

	removeKeys := ui.ListenKeys(func(a ui.Action) {
		switch a {
		case ui.ActionTogglePlayback:
			toggle()
		case ui.ActionVolumeUp, ui.ActionVolumeDown:
			if p != nil {
				setVolume(ui.StepVolume(p.Volume(), a, cfg.VolumeStep))
			}
		case ui.ActionToggleStats:
			if backdrop != nil {
				backdrop.Stats.Toggle()
			}
		}
	})

	tornDown := false
	teardown := func() {
		if tornDown {
			return
		}
		tornDown = true
		removeKeys()
		removeGesture()
		if backdrop != nil {
			backdrop.Teardown()
		}
		if panel != nil {
			panel.Remove()
		}
		if p != nil {
			p.Teardown()
			graph.Close()
		}
	}

	js.Global.Set("AudioBackdrop", map[string]interface{}{
		"teardown":  teardown,
		"toggle":    toggle,
		"setVolume": setVolume,
		"isPlaying": func() bool {
			return p != nil && p.Playing()
		},
	})

	js.Global.Call("addEventListener", "pagehide", func() {
		teardown()
	})

	select {}
}
