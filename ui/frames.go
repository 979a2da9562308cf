//go:build js
// +build js

package ui

import "github.com/gopherjs/gopherjs/js"

// AnimationFrames schedules callbacks with requestAnimationFrame.
type AnimationFrames struct{}

// RequestFrame schedules fn for the next frame and returns the request id.
func (AnimationFrames) RequestFrame(fn func(ts float64)) int {
	return js.Global.Call("requestAnimationFrame", fn).Int()
}

// CancelFrame cancels a pending request.
func (AnimationFrames) CancelFrame(id int) {
	js.Global.Call("cancelAnimationFrame", id)
}

// Now returns performance.now() in milliseconds.
func Now() float64 {
	return js.Global.Get("performance").Call("now").Float()
}
