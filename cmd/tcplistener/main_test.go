package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "root",
			raw:  "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n",
			want: []string{`Request Line: "GET / HTTP/1.1"`, "Path: /\n", "Target: /index.html\n", "text/html; charset=UTF-8"},
		},
		{
			name: "wasm",
			raw:  "GET /pkg/app.wasm HTTP/1.1\r\n\r\n",
			want: []string{"Target: /pkg/app.wasm\n", "application/wasm (wasm)"},
		},
		{
			name: "rejected",
			raw:  "DELETE /x HTTP/1.1\r\n\r\n",
			want: []string{"Rejected: "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			describe(&buf, []byte(tt.raw))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}
