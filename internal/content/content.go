// Package content derives the Content-Type of a served file from its
// extension.
package content

import "github.com/Brownie44l1/arenahttpd/internal/strview"

// Type is the category selected from a file extension.
type Type int

const (
	Default Type = iota
	HTML
	CSS
	JavaScript
	WASM
)

var typeNames = map[Type]string{
	Default:    "default",
	HTML:       "html",
	CSS:        "css",
	JavaScript: "javascript",
	WASM:       "wasm",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MIME returns the Content-Type header value for t.
// CSS has no entry of its own and is sent as application/octet-stream.
func (t Type) MIME() string {
	switch t {
	case HTML:
		return "text/html; charset=UTF-8"
	case JavaScript:
		return "text/javascript; charset=UTF-8"
	case WASM:
		return "application/wasm"
	default:
		return "application/octet-stream"
	}
}

// Classify maps the extension after the last '.' of path, compared
// case-sensitively. A path without a dot, or ending in one, is Default.
func Classify(path strview.View) Type {
	path.CollectUntil('.', false)

	var ext strview.View
	for path.PopChar() == '.' {
		ext, _ = path.CollectUntil('.', true)
	}

	switch {
	case ext.EqualString("html"):
		return HTML
	case ext.EqualString("css"):
		return CSS
	case ext.EqualString("js"):
		return JavaScript
	case ext.EqualString("wasm"):
		return WASM
	}
	return Default
}
