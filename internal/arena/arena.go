package arena

import (
	"errors"
	"fmt"
)

// DefaultAlign is the alignment used by Push.
const DefaultAlign = 16

var (
	ErrExhausted    = errors.New("arena: capacity exhausted")
	ErrInvalidAlign = errors.New("arena: alignment must be a power of two")
)

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
type Arena struct {
	buf    []byte // len(buf) is the capacity
	offset int
}

// New creates an arena backed by a freshly allocated buffer of capacity bytes.
func New(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc returns a zeroed region of size bytes whose start is rounded up to
// align. It panics with an error wrapping ErrExhausted when the region does
// not fit in the remaining capacity.
func (a *Arena) Alloc(size, align int) []byte {
	b, err := a.TryAlloc(size, align)
	if err != nil {
		panic(err)
	}
	return b
}

// TryAlloc is Alloc that reports exhaustion instead of panicking.
// The arena is left untouched when an error is returned.
func (a *Arena) TryAlloc(size, align int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("arena: negative size %d", size)
	}
	if align <= 0 {
		align = 1
	}
	if align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlign, align)
	}

	start := alignUp(a.offset, align)
	if start > len(a.buf) || size > len(a.buf)-start {
		return nil, fmt.Errorf("%w: requested %d bytes at offset %d, capacity %d",
			ErrExhausted, size, start, len(a.buf))
	}

	end := start + size
	b := a.buf[start:end:end]
	clear(b)
	a.offset = end
	return b, nil
}

// Push allocates size bytes with DefaultAlign.
func (a *Arena) Push(size int) []byte {
	return a.Alloc(size, DefaultAlign)
}

// Scratch returns a new arena over the parent's unused tail. The parent is
// not modified, so every call starts from the same high-water mark and
// reuses the same memory.
func (a *Arena) Scratch() *Arena {
	return &Arena{buf: a.buf[a.offset:len(a.buf):len(a.buf)]}
}

// alignUp rounds off up to a multiple of align (a power of two).
func alignUp(off, align int) int {
	mask := align - 1
	return (off + mask) &^ mask
}
