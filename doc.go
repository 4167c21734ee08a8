// Package quicvarint implements the variable-length integer encoding of QUIC
// (RFC 9000, section 16).
//
// Values in [0, 2^62-1] are written in 1, 2, 4 or 8 bytes. The two most
// significant bits of the first byte carry the length class; the rest of the
// bits hold the value in network byte order:
//
//	LL xxxxxx [xxxxxxxx ...]
//	00 -> 1 byte,  6 value bits
//	01 -> 2 bytes, 14 value bits
//	10 -> 4 bytes, 30 value bits
//	11 -> 8 bytes, 62 value bits
//
// Encoders always pick the shortest form. Decoders accept any well-formed
// sequence, so 0x4025 decodes to 37 even though 37 is encoded as 0x25.
//
// Slices:
//
//	b, err := quicvarint.Append(nil, 15293) // 7b bd
//	v, n, err := quicvarint.Parse(b)        // 15293, 2
//
// Streams:
//
//	_, err := quicvarint.Write(w, v)
//	v, err := quicvarint.Read(bufio.NewReader(r))
//
// Out-of-range input yields a *RangeError wrapping ErrInvalidArgument or
// ErrValueTooLarge; short input yields an *UnderflowError wrapping
// ErrBufferUnderflow. Nothing is written and no cursor moves on failure.
//
// Package codec builds varint length-delimited records on top of this package.
package quicvarint
