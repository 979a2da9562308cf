//go:build js
// +build js

package ui

import "github.com/gopherjs/gopherjs/js"

// ListenKeys dispatches bound keys to fn. Keys typed into form fields are
// ignored. The returned func removes the listener.
func ListenKeys(fn func(Action)) (remove func()) {
	doc := js.Global.Get("document")
	handler := js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		event := args[0]
		if target := event.Get("target"); !isMissing(target) {
			switch target.Get("tagName").String() {
			case "INPUT", "TEXTAREA", "SELECT":
				return nil
			}
		}
		action, ok := ActionFor(event.Get("keyCode").Int())
		if !ok {
			return nil
		}
		event.Call("preventDefault")
		fn(action)
		return nil
	})
	doc.Call("addEventListener", "keydown", handler)
	return func() {
		doc.Call("removeEventListener", "keydown", handler)
	}
}
