// Package codec serializes values to bytes and frames them as QUIC-varint
// length-delimited records.
package codec

import "errors"

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var (
	// ErrRecordTooLarge is returned when a record exceeds the configured limit.
	ErrRecordTooLarge = errors.New("codec: record too large")
	// ErrTrailingData is returned when input holds bytes past a single record.
	ErrTrailingData = errors.New("codec: trailing data")
)
