package quicvarint

import (
	"errors"
	"fmt"
	"io"

	"github.com/unkn0wn-root/quicvarint/internal/wire"
)

const (
	// Min is the smallest encodable value.
	Min = 0
	// Max is the largest encodable value (2^62-1).
	Max = 1<<62 - 1
	// MaxLen is the longest encoding in bytes.
	MaxLen = wire.MaxLen
)

// Len returns the number of bytes Append would produce for v, or 0 when v > Max.
func Len(v uint64) int {
	c, ok := wire.Class(v)
	if !ok {
		return 0
	}
	return wire.Size(c)
}

// Append appends the canonical encoding of v to b.
// On error b is returned unchanged.
func Append(b []byte, v int64) ([]byte, error) {
	if v < 0 {
		return b, &RangeError{Value: v, Err: ErrInvalidArgument}
	}
	if v > Max {
		return b, &RangeError{Value: v, Err: ErrValueTooLarge}
	}
	return AppendUint(b, uint64(v))
}

// AppendUint is Append for unsigned input.
func AppendUint(b []byte, v uint64) ([]byte, error) {
	c, ok := wire.Class(v)
	if !ok {
		return b, &RangeError{Value: v, Err: ErrValueTooLarge}
	}
	var tmp [MaxLen]byte
	wire.Put(tmp[:], v, c)
	return append(b, tmp[:wire.Size(c)]...), nil
}

// Write encodes v to w using a single Write call and reports the bytes written.
// Nothing is written when v is out of range.
func Write(w io.Writer, v int64) (int, error) {
	var tmp [MaxLen]byte
	b, err := Append(tmp[:0], v)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// Parse decodes the varint at the start of b and reports how many bytes it
// occupied. Non-minimal encodings are accepted. On error n is 0.
func Parse(b []byte) (v uint64, n int, err error) {
	if len(b) == 0 {
		return 0, 0, &UnderflowError{Need: 1}
	}
	n = wire.Size(wire.Tag(b[0]))
	if len(b) < n {
		return 0, 0, &UnderflowError{Need: n, Have: len(b)}
	}
	return wire.Get(b[:n]), n, nil
}

// Read decodes one varint from r. A reader cannot be rewound, so on underflow
// UnderflowError.Have tells how many bytes were consumed.
func Read(r io.ByteReader) (uint64, error) {
	var buf [MaxLen]byte
	first, err := r.ReadByte()
	if err != nil {
		return 0, readErr(err, 1, 0)
	}
	buf[0] = first
	n := wire.Size(wire.Tag(first))
	for i := 1; i < n; i++ {
		if buf[i], err = r.ReadByte(); err != nil {
			return 0, readErr(err, n, i)
		}
	}
	return wire.Get(buf[:n]), nil
}

func readErr(err error, need, have int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &UnderflowError{Need: need, Have: have}
	}
	return fmt.Errorf("quicvarint: read byte %d of %d: %w", have+1, need, err)
}
