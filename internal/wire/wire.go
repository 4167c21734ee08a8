// Package wire holds the bit-level layout of a QUIC variable-length integer.
// Callers are expected to validate ranges and buffer sizes; the helpers here
// only shuffle bits.
package wire

import "math/bits"

const (
	// MaxLen is the widest encoding (length class 3).
	MaxLen = 8

	tagShift  = 6
	firstMask = 0x3F
)

// bit-length limits per class: 6, 14, 30 and 62 value bits.
var classBits = [...]int{7, 15, 31, 63}

// Class returns the smallest length class able to hold v.
// ok is false when v needs more than 62 bits.
func Class(v uint64) (class int, ok bool) {
	n := bits.Len64(v)
	for c, limit := range classBits {
		if n < limit {
			return c, true
		}
	}
	return 0, false
}

// Size is the encoded width in bytes of a length class.
func Size(class int) int { return 1 << class }

// Tag extracts the length class from a first byte.
func Tag(first byte) int { return int(first >> tagShift) }

// Put writes v into dst[:Size(class)] as class-tagged big-endian.
// v must fit the class and dst must be large enough.
func Put(dst []byte, v uint64, class int) {
	n := Size(class)
	_ = dst[n-1] // bounds check hint
	for i := n - 1; i > 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
	dst[0] = byte(class)<<tagShift | byte(v)&firstMask
}

// Get reconstructs the value from src, which must hold exactly the number of
// bytes declared by its first byte.
func Get(src []byte) uint64 {
	v := uint64(src[0] & firstMask)
	for _, b := range src[1:] {
		v = v<<8 | uint64(b)
	}
	return v
}
