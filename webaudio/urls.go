//go:build js
// +build js

package webaudio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonic-backdrop/player"
)

// File is a DOM File from an <input type="file">.
type File struct {
	*js.Object
}

// Name returns the file name.
func (f File) Name() string {
	return f.Get("name").String()
}

// Type returns the MIME type.
func (f File) Type() string {
	return f.Get("type").String()
}

// ObjectURLs creates blob: URLs with URL.createObjectURL.
type ObjectURLs struct{}

// Create returns an object URL for f.
func (ObjectURLs) Create(f player.File) (url string, err error) {
	defer recoverJS(&err)
	file, ok := f.(File)
	if !ok {
		return "", errNotDOMFile
	}
	return js.Global.Get("URL").Call("createObjectURL", file.Object).String(), nil
}

// Revoke releases url.
func (ObjectURLs) Revoke(url string) {
	js.Global.Get("URL").Call("revokeObjectURL", url)
}
