package quicvarint

import "github.com/unkn0wn-root/quicvarint/internal/wire"

// Buffer is a byte cursor: writes append to the end, reads advance from the
// front. A failed read leaves the position untouched.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
	pos int
}

// NewBuffer returns a Buffer reading from (and appending to) b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Bytes returns the unread portion. It aliases the buffer's storage.
func (b *Buffer) Bytes() []byte { return b.buf[b.pos:] }

// Len returns the total number of bytes held, read or not.
func (b *Buffer) Len() int { return len(b.buf) }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.buf) - b.pos }

// Pos returns the read position.
func (b *Buffer) Pos() int { return b.pos }

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.pos = 0
}

// WriteVarint appends v. The buffer is unchanged on error.
func (b *Buffer) WriteVarint(v int64) error {
	out, err := Append(b.buf, v)
	if err != nil {
		return err
	}
	b.buf = out
	return nil
}

// WriteUvarint appends v. The buffer is unchanged on error.
func (b *Buffer) WriteUvarint(v uint64) error {
	out, err := AppendUint(b.buf, v)
	if err != nil {
		return err
	}
	b.buf = out
	return nil
}

// ReadVarint decodes the next varint and advances past it.
func (b *Buffer) ReadVarint() (uint64, error) {
	v, n, err := Parse(b.buf[b.pos:])
	if err != nil {
		return 0, err
	}
	b.pos += n
	return v, nil
}

// PeekLen returns the encoded length announced by the next byte without
// consuming anything.
func (b *Buffer) PeekLen() (int, error) {
	if b.pos >= len(b.buf) {
		return 0, &UnderflowError{Need: 1}
	}
	return wire.Size(wire.Tag(b.buf[b.pos])), nil
}
