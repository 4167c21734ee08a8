package codec

import (
	"fmt"
	"math"

	"github.com/unkn0wn-root/quicvarint"
)

// Delimited wraps another codec and prefixes every payload with its length
// as a QUIC varint:
//
//	len(varint) | payload(len)
//
// If MaxDecode > 0, Decode rejects records announcing a longer payload
// without invoking Inner. Typical use: input from an untrusted peer.
type Delimited[V any] struct {
	// Inner is the codec producing the payload. It must be set.
	Inner Codec[V]
	// MaxDecode bounds the declared payload length accepted by Decode.
	MaxDecode int
}

var _ Codec[[]byte] = Delimited[[]byte]{}

func (c Delimited[V]) Encode(v V) ([]byte, error) {
	payload, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, quicvarint.Len(uint64(len(payload)))+len(payload))
	out, err = quicvarint.AppendUint(out, uint64(len(payload)))
	if err != nil {
		return nil, err
	}
	return append(out, payload...), nil
}

// Decode expects exactly one record in b.
func (c Delimited[V]) Decode(b []byte) (V, error) {
	var zero V
	payload, n, err := c.split(b)
	if err != nil {
		return zero, err
	}
	if n != len(b) {
		return zero, fmt.Errorf("%w: %d bytes after record", ErrTrailingData, len(b)-n)
	}
	return c.Inner.Decode(payload)
}

// Next decodes the first record in b and returns the rest of the input.
func (c Delimited[V]) Next(b []byte) (V, []byte, error) {
	var zero V
	payload, n, err := c.split(b)
	if err != nil {
		return zero, b, err
	}
	v, err := c.Inner.Decode(payload)
	if err != nil {
		return zero, b, err
	}
	return v, b[n:], nil
}

// split returns the payload of the leading record and the record's full size.
func (c Delimited[V]) split(b []byte) ([]byte, int, error) {
	l, n, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, fmt.Errorf("codec: record length: %w", err)
	}
	if c.MaxDecode > 0 && l > uint64(c.MaxDecode) {
		return nil, 0, fmt.Errorf("%w: %d > %d", ErrRecordTooLarge, l, c.MaxDecode)
	}
	if l > uint64(len(b)-n) {
		need := math.MaxInt
		if l <= uint64(math.MaxInt-n) {
			need = n + int(l)
		}
		return nil, 0, &quicvarint.UnderflowError{Need: need, Have: len(b)}
	}
	end := n + int(l)
	return b[n:end], end, nil
}
