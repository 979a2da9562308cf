//go:build js
// +build js

package ui

import "github.com/gopherjs/gopherjs/js"

// Mount returns the element with id, or the document body when it does not
// exist.
func Mount(id string) *js.Object {
	doc := js.Global.Get("document")
	el := doc.Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return doc.Get("body")
	}
	return el
}

// Viewport returns the window's inner size.
func Viewport() (int, int) {
	return js.Global.Get("innerWidth").Int(), js.Global.Get("innerHeight").Int()
}

// OnResize calls fn with the new viewport on every window resize. The
// returned func removes the listener.
func OnResize(fn func(w, h int)) (remove func()) {
	handler := js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		fn(Viewport())
		return nil
	})
	js.Global.Call("addEventListener", "resize", handler)
	return func() {
		js.Global.Call("removeEventListener", "resize", handler)
	}
}

// OnFirstGesture calls fn once, on the first click or key press anywhere in
// the document. The returned func removes the listeners if it has not fired.
func OnFirstGesture(fn func()) (remove func()) {
	doc := js.Global.Get("document")
	fired := false
	var handler *js.Object
	remove = func() {
		doc.Call("removeEventListener", "pointerdown", handler)
		doc.Call("removeEventListener", "keydown", handler)
	}
	handler = js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		if fired {
			return nil
		}
		fired = true
		remove()
		fn()
		return nil
	})
	doc.Call("addEventListener", "pointerdown", handler)
	doc.Call("addEventListener", "keydown", handler)
	return remove
}

func isMissing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}
