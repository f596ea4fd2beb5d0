package arena

// Offset returns the number of bytes consumed, including alignment padding.
func (a *Arena) Offset() int {
	return a.offset
}

// Capacity returns the total size of the arena in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the bytes still available before alignment.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.offset
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		InUse:       a.offset,
		Capacity:    len(a.buf),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	InUse       int     // Bytes consumed
	Capacity    int     // Total capacity in bytes
	Utilization float64 // Ratio of used to total capacity
}
