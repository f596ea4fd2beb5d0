package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Type
	}{
		{"index.html", HTML},
		{"/index.html", HTML},
		{"main.wasm", WASM},
		{"/app/main.js", JavaScript},
		{"/style.css", CSS},
		{"archive.tar.gz", Default},
		{"bundle.min.js", JavaScript},
		{"noext", Default},
		{"/dir.v2/README", Default},
		{"trailing.", Default},
		{"..", Default},
		{".html", HTML},
		{"INDEX.HTML", Default},
		{"page.htm", Default},
		{"", Default},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(strview.Static(tt.path)))
		})
	}
}

func TestClassifyDoesNotConsumeCallerView(t *testing.T) {
	path := strview.Static("/main.wasm")
	Classify(path)
	assert.Equal(t, "/main.wasm", path.String())
}

func TestMIME(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{HTML, "text/html; charset=UTF-8"},
		{JavaScript, "text/javascript; charset=UTF-8"},
		{WASM, "application/wasm"},
		{CSS, "application/octet-stream"},
		{Default, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.MIME())
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "wasm", WASM.String())
	assert.Equal(t, "unknown", Type(42).String())
}
