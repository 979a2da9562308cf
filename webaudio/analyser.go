//go:build js
// +build js

package webaudio

import "github.com/gopherjs/gopherjs/js"

// Analyser wraps an AnalyserNode.
type Analyser struct {
	node *js.Object
	bins int
}

func newAnalyser(node *js.Object) *Analyser {
	return &Analyser{
		node: node,
		bins: node.Get("frequencyBinCount").Int(),
	}
}

// FrequencyBinCount returns the node's bin count.
func (a *Analyser) FrequencyBinCount() int {
	return a.bins
}

// ByteFrequencyData lets getByteFrequencyData write straight into dst.
// Bins beyond len(dst) are dropped; entries beyond the bin count are left
// as they are.
func (a *Analyser) ByteFrequencyData(dst []byte) {
	if len(dst) == 0 {
		return
	}
	a.node.Call("getByteFrequencyData", byteView(dst))
}

// byteView returns a Uint8Array over the elements of s, sharing its memory.
func byteView(s []byte) *js.Object {
	internal := js.InternalObject(s)
	off := internal.Get("$offset").Int()
	return internal.Get("$array").Call("subarray", off, off+len(s))
}
