package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"zero capacity", 0, 0},
		{"negative capacity", -1, 0},
		{"custom capacity", 4096, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.capacity)
			assert.Equal(t, tt.expected, a.Capacity())
			assert.Equal(t, 0, a.Offset())
		})
	}
}

func TestAllocAdvancesOffset(t *testing.T) {
	a := New(1024)

	b := a.Alloc(100, 1)
	require.Len(t, b, 100)
	assert.Equal(t, 100, a.Offset())
	assert.Equal(t, 100, cap(b), "allocation must not expose the next region")

	b = a.Alloc(10, 1)
	require.Len(t, b, 10)
	assert.Equal(t, 110, a.Offset())
}

func TestAllocAlignment(t *testing.T) {
	a := New(1024)

	a.Alloc(3, 1)
	a.Alloc(8, 16)
	assert.Equal(t, 16+8, a.Offset())

	a.Push(1)
	assert.Equal(t, 32+1, a.Offset())
}

func TestAllocZeroesReusedMemory(t *testing.T) {
	parent := New(64)

	first := parent.Scratch()
	b := first.Alloc(16, 1)
	for i := range b {
		b[i] = 0xff
	}

	second := parent.Scratch()
	b = second.Alloc(16, 1)
	assert.Equal(t, make([]byte, 16), b)
}

func TestAllocExactCapacityThenFail(t *testing.T) {
	a := New(100)

	for range 4 {
		a.Alloc(25, 1)
	}
	assert.Equal(t, 100, a.Offset())
	assert.Equal(t, 0, a.Remaining())

	_, err := a.TryAlloc(1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 100, a.Offset(), "failed allocation must not move the offset")

	assert.Panics(t, func() { a.Alloc(1, 1) })
}

func TestAllocPanicValueWrapsExhausted(t *testing.T) {
	a := New(8)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrExhausted))
	}()
	a.Alloc(9, 1)
}

func TestAllocAlignmentPastCapacity(t *testing.T) {
	a := New(20)
	a.Alloc(17, 1)

	_, err := a.TryAlloc(0, 32)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestAllocZeroSize(t *testing.T) {
	a := New(16)
	b, err := a.TryAlloc(0, 1)
	require.NoError(t, err)
	assert.Len(t, b, 0)
	assert.Equal(t, 0, a.Offset())
}

func TestTryAllocInvalidArguments(t *testing.T) {
	a := New(16)

	_, err := a.TryAlloc(-1, 1)
	assert.Error(t, err)

	_, err = a.TryAlloc(4, 3)
	assert.ErrorIs(t, err, ErrInvalidAlign)
}

func TestScratch(t *testing.T) {
	parent := New(1000)
	parent.Alloc(100, 1)

	scratch := parent.Scratch()
	assert.Equal(t, 0, scratch.Offset())
	assert.Equal(t, 900, scratch.Capacity())

	scratch.Alloc(500, 1)
	assert.Equal(t, 100, parent.Offset(), "scratch must not mutate the parent")

	again := parent.Scratch()
	assert.Equal(t, 0, again.Offset())
	assert.Equal(t, 900, again.Capacity())

	_, err := again.TryAlloc(901, 1)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestScratchSharesParentMemory(t *testing.T) {
	parent := New(32)
	a := parent.Scratch().Alloc(4, 1)
	copy(a, "abcd")

	b := parent.Scratch().Alloc(4, 1)
	assert.Same(t, &a[0], &b[0], "consecutive scratch arenas reuse the same bytes")
	assert.Equal(t, make([]byte, 4), a, "reuse zeroes the previous connection's bytes")
}

func TestMetrics(t *testing.T) {
	a := New(200)
	a.Alloc(50, 1)

	m := a.Metrics()
	assert.Equal(t, 50, m.InUse)
	assert.Equal(t, 200, m.Capacity)
	assert.InDelta(t, 0.25, m.Utilization, 1e-9)

	assert.Equal(t, 0.0, New(0).Utilization())
}

func BenchmarkPush(b *testing.B) {
	parent := New(1 << 20)
	b.ReportAllocs()
	for b.Loop() {
		s := parent.Scratch()
		for range 64 {
			s.Push(64)
		}
	}
}
