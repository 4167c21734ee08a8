package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/unkn0wn-root/quicvarint"
)

const defaultMaxRecord = 4 << 20

// Options tune record streams. The zero value is usable.
type Options struct {
	MaxRecord int               // payload limit in bytes; 0 => 4MiB, <0 => unlimited
	Logger    quicvarint.Logger // if nil, NopLogger is used
}

func (o Options) resolve() (int, quicvarint.Logger) {
	return coalesce(o.MaxRecord, defaultMaxRecord), coalesce[quicvarint.Logger](o.Logger, quicvarint.NopLogger{})
}

// Writer writes a sequence of length-delimited records.
// Call Flush when done. A Writer is not safe for concurrent use.
type Writer[V any] struct {
	w     *bufio.Writer
	codec Codec[V]
	limit int
	log   quicvarint.Logger
	n     uint64
}

func NewWriter[V any](w io.Writer, c Codec[V], opts Options) *Writer[V] {
	limit, log := opts.resolve()
	return &Writer[V]{w: bufio.NewWriter(w), codec: c, limit: limit, log: log}
}

func (w *Writer[V]) Write(v V) error {
	payload, err := w.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("codec: encode record %d: %w", w.n, err)
	}
	if w.limit > 0 && len(payload) > w.limit {
		w.log.Warn("record rejected", quicvarint.Fields{
			"record": w.n, "size": len(payload), "max": w.limit,
		})
		return fmt.Errorf("%w: %d > %d", ErrRecordTooLarge, len(payload), w.limit)
	}

	var hdr [quicvarint.MaxLen]byte
	prefix, err := quicvarint.AppendUint(hdr[:0], uint64(len(payload)))
	if err != nil {
		return err
	}
	if _, err := w.w.Write(prefix); err != nil {
		return err
	}
	if _, err := w.w.Write(payload); err != nil {
		return err
	}
	w.n++
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer[V]) Flush() error { return w.w.Flush() }

// Count reports the number of records written.
func (w *Writer[V]) Count() uint64 { return w.n }

// Reader reads a sequence of length-delimited records.
// A Reader is not safe for concurrent use.
type Reader[V any] struct {
	r     *bufio.Reader
	codec Codec[V]
	limit int
	log   quicvarint.Logger
	n     uint64
}

func NewReader[V any](r io.Reader, c Codec[V], opts Options) *Reader[V] {
	limit, log := opts.resolve()
	return &Reader[V]{r: bufio.NewReader(r), codec: c, limit: limit, log: log}
}

// Read returns the next record. It returns io.EOF when the stream ends on a
// record boundary. An oversized record is skipped and reported with
// ErrRecordTooLarge so the caller may keep reading.
func (r *Reader[V]) Read() (V, error) {
	var zero V

	l, err := quicvarint.Read(r.r)
	if err != nil {
		var ue *quicvarint.UnderflowError
		if errors.As(err, &ue) && ue.Have == 0 {
			return zero, io.EOF
		}
		r.log.Warn("record header truncated", quicvarint.Fields{"record": r.n, "err": err})
		return zero, err
	}
	idx := r.n
	r.n++

	if l > math.MaxInt {
		r.log.Warn("record length overflows int", quicvarint.Fields{"record": idx, "size": l})
		return zero, fmt.Errorf("%w: %d", ErrRecordTooLarge, l)
	}
	if r.limit > 0 && l > uint64(r.limit) {
		r.log.Warn("record skipped", quicvarint.Fields{"record": idx, "size": l, "max": r.limit})
		if d, err := r.r.Discard(int(l)); err != nil {
			return zero, &quicvarint.UnderflowError{Need: int(l), Have: d}
		}
		return zero, fmt.Errorf("%w: %d > %d", ErrRecordTooLarge, l, r.limit)
	}

	// grow with the data actually read; the header alone is untrusted
	var payload bytes.Buffer
	if got, err := io.CopyN(&payload, r.r, int64(l)); err != nil {
		r.log.Warn("record truncated", quicvarint.Fields{"record": idx, "size": l, "got": got})
		if errors.Is(err, io.EOF) {
			return zero, &quicvarint.UnderflowError{Need: int(l), Have: int(got)}
		}
		return zero, err
	}

	v, err := r.codec.Decode(payload.Bytes())
	if err != nil {
		r.log.Debug("record decode failed", quicvarint.Fields{"record": idx, "err": err})
		return zero, fmt.Errorf("codec: decode record %d: %w", idx, err)
	}
	return v, nil
}

// Count reports the number of record headers consumed.
func (r *Reader[V]) Count() uint64 { return r.n }
