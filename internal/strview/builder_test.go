package strview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/arenahttpd/internal/arena"
)

func TestBuilderFinalize(t *testing.T) {
	a := arena.New(1024)

	b := NewBuilder(Static("ab"))
	b.Append(Static(""))
	b.AppendString("cde")

	assert.Equal(t, 5, b.Len())

	out := b.Finalize(a)
	assert.Equal(t, "abcde", out.String())
	assert.Equal(t, 5, out.Len())
	assert.Equal(t, 5, a.Offset())
}

func TestBuilderDoesNotCopyUntilFinalize(t *testing.T) {
	a := arena.New(64)
	frag := []byte("xyz")

	b := NewBuilder(Of(frag))
	frag[0] = 'X'
	out := b.Finalize(a)
	assert.Equal(t, "Xyz", out.String())

	frag[1] = 'Y'
	assert.Equal(t, "Xyz", out.String(), "finalized output owns its bytes")
}

func TestBuilderMisuse(t *testing.T) {
	a := arena.New(64)
	b := NewBuilder(Static("a"))
	b.Finalize(a)

	assert.Panics(t, func() { b.Append(Static("b")) })
	assert.Panics(t, func() { b.Finalize(a) })
}

func TestBuilderReset(t *testing.T) {
	a := arena.New(64)
	b := NewBuilder(Static("first"))
	b.AppendString(" request")
	require.Equal(t, "first request", b.Finalize(a).String())

	b.Reset(Static("second"))
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, "second", b.Finalize(a).String())
}

func TestBuilderFinalizeExhaustsArena(t *testing.T) {
	a := arena.New(4)
	b := NewBuilder(Static("too long"))

	assert.Panics(t, func() { b.Finalize(a) })
}

func BenchmarkBuilderFinalize(b *testing.B) {
	parent := arena.New(1 << 20)
	bld := NewBuilder(Static(""))

	b.ReportAllocs()
	for b.Loop() {
		scratch := parent.Scratch()
		bld.Reset(Static("HTTP/1.1 200 OK\r\n"))
		bld.AppendString("Content-Type: ")
		bld.AppendString("application/wasm")
		bld.AppendString("\r\n\r\n")
		_ = bld.Finalize(scratch)
	}
}
