package strview

import "github.com/Brownie44l1/arenahttpd/internal/arena"

// Builder accumulates fragments without copying them. Fragment bytes are
// borrowed; only Finalize copies, into a single arena allocation.
//
// The fragment list lives in a Go slice rather than in the arena because it
// holds pointers. Reset lets one Builder serve many connections so the list
// stops growing after warm-up.
type Builder struct {
	frags     []View
	total     int
	finalized bool
}

// NewBuilder starts a builder with one fragment.
func NewBuilder(first View) *Builder {
	b := &Builder{frags: make([]View, 0, 8)}
	b.Reset(first)
	return b
}

// Reset discards all fragments and starts over with first.
func (b *Builder) Reset(first View) {
	clear(b.frags)
	b.frags = append(b.frags[:0], first)
	b.total = first.Len()
	b.finalized = false
}

// Append adds a fragment. It panics if the builder was already finalized.
func (b *Builder) Append(frag View) {
	if b.finalized {
		panic("strview: Append after Finalize")
	}
	b.frags = append(b.frags, frag)
	b.total += frag.Len()
}

// AppendString appends s without copying it.
func (b *Builder) AppendString(s string) {
	b.Append(Static(s))
}

// Len returns the total length of all fragments.
func (b *Builder) Len() int {
	return b.total
}

// Finalize copies every fragment, in append order, into one buffer carved
// from a and returns a view over it. It may be called once per Reset.
func (b *Builder) Finalize(a *arena.Arena) View {
	if b.finalized {
		panic("strview: Finalize called twice")
	}
	b.finalized = true

	out := a.Alloc(b.total, 1)
	n := 0
	for _, f := range b.frags {
		n += copy(out[n:], f.b)
	}
	return Of(out)
}
