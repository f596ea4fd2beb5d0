// Package arena implements a fixed-capacity bump allocator.
//
// # Overview
//
// An Arena owns one contiguous byte buffer sized once at startup. Memory is
// handed out by advancing an offset; there is no per-allocation free. The
// server uses a single long-lived arena and derives a scratch arena from it
// for every accepted connection:
//
//	temp := arena.New(32 << 20)
//	for {
//		scratch := temp.Scratch() // starts empty at temp's high-water mark
//		buf := scratch.Push(2048)
//		...
//	}
//
// Because every scratch arena starts at the same parent offset, the memory
// used by connection N is reused by connection N+1. Nothing carved from a
// scratch arena may be retained past the connection that created it.
//
// # Exhaustion
//
// Capacity is fixed. Alloc and Push panic with an error wrapping
// ErrExhausted when a request does not fit; TryAlloc reports the same
// condition as an error instead.
//
// # Pointers
//
// Arena memory is plain bytes. Do not store Go pointers (slices, strings,
// maps, interfaces) inside it: the garbage collector does not scan it.
package arena
