// Package strview provides non-owning byte views and an append-only builder
// that defers copying until the final contiguous buffer is carved from an
// arena.
package strview

import (
	"bytes"
	"unsafe"
)

// View is a borrowed, non-terminated run of bytes. It never owns memory; the
// backing buffer (an arena, a receive buffer or static data) must outlive it.
//
// A View that failed an expectation is poisoned: it becomes empty and
// Failed reports true. Every later expectation on it fails too.
type View struct {
	b      []byte
	failed bool
}

// Of returns a view over b.
func Of(b []byte) View {
	return View{b: b}
}

// Static returns a view over the bytes of s without copying. The view must
// be treated as read-only.
func Static(s string) View {
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Poisoned returns the failed view.
func Poisoned() View {
	return View{failed: true}
}

func (v View) Len() int       { return len(v.b) }
func (v View) Bytes() []byte  { return v.b }
func (v View) Failed() bool   { return v.failed }
func (v View) IsEmpty() bool  { return len(v.b) == 0 }
func (v View) String() string { return string(v.b) }

func (v *View) poison() {
	*v = Poisoned()
}

// PopChar removes and returns the first byte. It returns 0 on an empty view.
func (v *View) PopChar() byte {
	if len(v.b) == 0 {
		return 0
	}
	c := v.b[0]
	v.b = v.b[1:]
	return c
}

// Peek returns the first byte without consuming it, or 0 on an empty view.
func (v View) Peek() byte {
	if len(v.b) == 0 {
		return 0
	}
	return v.b[0]
}

// ExpectLiteral consumes len(lit) bytes that must equal lit. On any mismatch,
// including too few remaining bytes, the view is poisoned and the bytes it
// held are lost.
func (v *View) ExpectLiteral(lit string) bool {
	if v.failed || len(v.b) < len(lit) || string(v.b[:len(lit)]) != lit {
		v.poison()
		return false
	}
	v.b = v.b[len(lit):]
	return true
}

// ExpectChar is ExpectLiteral for a single byte.
func (v *View) ExpectChar(c byte) bool {
	if v.failed || len(v.b) == 0 || v.b[0] != c {
		v.poison()
		return false
	}
	v.b = v.b[1:]
	return true
}

// CollectUntil returns the bytes up to, not including, the next terminator
// and leaves the terminator in v. When the input runs out first, the
// collected bytes are returned only if allowEnd is set; otherwise v is
// poisoned. Collecting from an empty view always fails. A NUL byte is
// ordinary data and does not end the input.
func (v *View) CollectUntil(terminator byte, allowEnd bool) (View, bool) {
	if v.failed || len(v.b) == 0 {
		v.poison()
		return Poisoned(), false
	}

	i := bytes.IndexByte(v.b, terminator)
	if i < 0 {
		if !allowEnd {
			v.poison()
			return Poisoned(), false
		}
		out := View{b: v.b}
		v.b = v.b[len(v.b):]
		return out, true
	}

	out := View{b: v.b[:i:i]}
	v.b = v.b[i:]
	return out, true
}

// Equal reports whether a and b hold the same bytes. Views of different
// lengths are never equal.
func Equal(a, b View) bool {
	return bytes.Equal(a.b, b.b)
}

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool {
	return string(v.b) == s
}
