package quicvarint

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidArgument reports a negative value handed to an encoder.
	ErrInvalidArgument = errors.New("quicvarint: invalid argument")
	// ErrValueTooLarge reports a value above Max.
	ErrValueTooLarge = errors.New("quicvarint: value too large")
	// ErrBufferUnderflow reports a source shorter than the declared length.
	ErrBufferUnderflow = errors.New("quicvarint: buffer underflow")
)

// RangeError is returned by the encoders for values outside [Min, Max].
// Value holds the rejected input as passed by the caller (int64 or uint64).
type RangeError struct {
	Value any
	Err   error // ErrInvalidArgument or ErrValueTooLarge
}

func (e *RangeError) Error() string {
	switch e.Err {
	case ErrInvalidArgument:
		return fmt.Sprintf("%v: %v is negative", e.Err, e.Value)
	case ErrValueTooLarge:
		return fmt.Sprintf("%v: %v exceeds %d", e.Err, e.Value, uint64(Max))
	default:
		return fmt.Sprintf("quicvarint: %v out of range", e.Value)
	}
}

func (e *RangeError) Unwrap() error { return e.Err }

// UnderflowError is returned by the decoders when the source runs dry.
// Need is the length declared by the first byte (1 when even that is missing),
// Have is the number of bytes that were available.
type UnderflowError struct {
	Need int
	Have int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%v: need %d bytes, have %d", ErrBufferUnderflow, e.Need, e.Have)
}

func (e *UnderflowError) Unwrap() error { return ErrBufferUnderflow }

// Is lets callers treat an underflow like a truncated stream.
func (e *UnderflowError) Is(target error) bool {
	return target == io.ErrUnexpectedEOF
}
