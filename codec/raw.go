package codec

import (
	"fmt"

	"github.com/unkn0wn-root/quicvarint"
)

// Bytes passes []byte through untouched. Pair it with Delimited when the
// payload is already serialized and only framing is wanted.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between string and its UTF-8 bytes without validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

// Varint stores a uint64 as a bare QUIC varint. Decode requires the input to
// be exactly one varint.
type Varint struct{}

func (Varint) Encode(v uint64) ([]byte, error) { return quicvarint.AppendUint(nil, v) }

func (Varint) Decode(b []byte) (uint64, error) {
	v, n, err := quicvarint.Parse(b)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, fmt.Errorf("%w: %d bytes after varint", ErrTrailingData, len(b)-n)
	}
	return v, nil
}
