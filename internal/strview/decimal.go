package strview

import "github.com/Brownie44l1/arenahttpd/internal/arena"

// decimalBufSize fits any uint32 (10 digits).
const decimalBufSize = 16

// FromUint32 formats v in decimal, without leading zeros, into a fixed
// 16-byte buffer carved from a. Digits are written right to left and the
// view is trimmed to the digits actually written.
func FromUint32(a *arena.Arena, v uint32) View {
	buf := a.Alloc(decimalBufSize, 1)

	i := len(buf)
	for {
		i--
		buf[i] = byte(v%10) + '0'
		v /= 10
		if v == 0 {
			break
		}
	}
	return Of(buf[i:])
}
