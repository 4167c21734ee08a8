package quicvarint

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func mustAppend(t *testing.T, v int64) []byte {
	t.Helper()
	b, err := Append(nil, v)
	if err != nil {
		t.Fatalf("Append(%d) error: %v", v, err)
	}
	return b
}

var vectors = []struct {
	hex   string
	value uint64
}{
	{"00", 0},
	{"25", 37},
	{"7bbd", 15293},
	{"9d7f3e7d", 494878333},
	{"c2197c5eff14e88c", 151288809941952652},
}

func TestEncodeVectors(t *testing.T) {
	for _, tc := range vectors {
		t.Run(tc.hex, func(t *testing.T) {
			got := hex.EncodeToString(mustAppend(t, int64(tc.value)))
			if got != tc.hex {
				t.Fatalf("Append(%d) = %s want %s", tc.value, got, tc.hex)
			}
		})
	}
}

func TestDecodeVectors(t *testing.T) {
	all := append(vectors[:len(vectors):len(vectors)], struct {
		hex   string
		value uint64
	}{"4025", 37})
	for _, tc := range all {
		t.Run(tc.hex, func(t *testing.T) {
			b := mustHex(t, tc.hex)
			v, n, err := Parse(b)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if v != tc.value || n != len(b) {
				t.Fatalf("Parse(%s) = (%d,%d) want (%d,%d)", tc.hex, v, n, tc.value, len(b))
			}
			rv, err := Read(bytes.NewReader(b))
			if err != nil {
				t.Fatalf("Read error: %v", err)
			}
			if rv != tc.value {
				t.Fatalf("Read(%s) = %d want %d", tc.hex, rv, tc.value)
			}
		})
	}
}

func TestCanonicalLength(t *testing.T) {
	cases := []struct {
		v   int64
		len int
	}{
		{0, 1},
		{63, 1},
		{64, 2},
		{16383, 2},
		{16384, 4},
		{1<<30 - 1, 4},
		{1 << 30, 8},
		{Max, 8},
	}
	for _, tc := range cases {
		b := mustAppend(t, tc.v)
		if len(b) != tc.len {
			t.Fatalf("Append(%d) len=%d want %d", tc.v, len(b), tc.len)
		}
		if Len(uint64(tc.v)) != tc.len {
			t.Fatalf("Len(%d)=%d want %d", tc.v, Len(uint64(tc.v)), tc.len)
		}
		if tag := int(b[0] >> 6); 1<<tag != tc.len {
			t.Fatalf("Append(%d) tag=%d for len %d", tc.v, tag, tc.len)
		}
	}
	if Len(Max+1) != 0 {
		t.Fatalf("Len(Max+1) should be 0")
	}
}

func TestRangeErrors(t *testing.T) {
	prefix := []byte{0xAA}

	out, err := Append(prefix, -1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Append(-1) err=%v want ErrInvalidArgument", err)
	}
	if !bytes.Equal(out, prefix) {
		t.Fatalf("Append(-1) modified buffer: %x", out)
	}

	out, err = Append(prefix, Max+1)
	if !errors.Is(err, ErrValueTooLarge) {
		t.Fatalf("Append(2^62) err=%v want ErrValueTooLarge", err)
	}
	if !bytes.Equal(out, prefix) {
		t.Fatalf("Append(2^62) modified buffer: %x", out)
	}

	if _, err := AppendUint(nil, math.MaxUint64); !errors.Is(err, ErrValueTooLarge) {
		t.Fatalf("AppendUint(max) err=%v", err)
	}
	if _, err := Append(nil, math.MinInt64); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Append(MinInt64) err=%v", err)
	}

	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
	if re.Value != int64(Max+1) {
		t.Fatalf("RangeError.Value=%v", re.Value)
	}
	if !strings.Contains(re.Error(), "exceeds") {
		t.Fatalf("unexpected message %q", re.Error())
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, 494878333)
	if err != nil || n != 4 {
		t.Fatalf("Write = (%d,%v)", n, err)
	}
	if got := hex.EncodeToString(buf.Bytes()); got != "9d7f3e7d" {
		t.Fatalf("Write produced %s", got)
	}

	buf.Reset()
	if _, err := Write(&buf, -5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Write(-5) err=%v", err)
	}
	if _, err := Write(&buf, Max+1); !errors.Is(err, ErrValueTooLarge) {
		t.Fatalf("Write(2^62) err=%v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("failed Write left %d bytes", buf.Len())
	}
}

func TestUnderflow(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		need int
		have int
	}{
		{"empty", nil, 1, 0},
		{"two_of_eight", []byte{0xc2, 0x19}, 8, 2},
		{"four_of_eight", []byte{0xc2, 0x19, 0x7c, 0x5e}, 8, 4},
		{"one_of_two", []byte{0x7b}, 2, 1},
		{"three_of_four", []byte{0x9d, 0x7f, 0x3e}, 4, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, n, err := Parse(tc.in)
			if !errors.Is(err, ErrBufferUnderflow) {
				t.Fatalf("Parse err=%v want ErrBufferUnderflow", err)
			}
			if v != 0 || n != 0 {
				t.Fatalf("Parse consumed on failure: v=%d n=%d", v, n)
			}
			var ue *UnderflowError
			if !errors.As(err, &ue) || ue.Need != tc.need || ue.Have != tc.have {
				t.Fatalf("Parse err=%#v want need=%d have=%d", err, tc.need, tc.have)
			}

			_, err = Read(bytes.NewReader(tc.in))
			if !errors.As(err, &ue) || ue.Need != tc.need || ue.Have != tc.have {
				t.Fatalf("Read err=%#v want need=%d have=%d", err, tc.need, tc.have)
			}
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("underflow should match io.ErrUnexpectedEOF")
			}
		})
	}
}

type failingReader struct{ err error }

func (f failingReader) ReadByte() (byte, error) { return 0, f.err }

func TestReadPropagatesReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(failingReader{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
	if errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("reader failure reported as underflow")
	}
}

func TestReadSequence(t *testing.T) {
	var raw []byte
	want := []uint64{0, 37, 15293, 494878333, 151288809941952652, Max}
	for _, v := range want {
		var err error
		raw, err = AppendUint(raw, v)
		if err != nil {
			t.Fatalf("AppendUint(%d): %v", v, err)
		}
	}
	r := bufio.NewReader(bytes.NewReader(raw))
	for i, w := range want {
		v, err := Read(r)
		if err != nil {
			t.Fatalf("Read #%d: %v", i, err)
		}
		if v != w {
			t.Fatalf("Read #%d = %d want %d", i, v, w)
		}
	}
	if _, err := Read(r); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("Read past end err=%v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	check := func(v uint64) {
		b, err := AppendUint(nil, v)
		if err != nil {
			t.Fatalf("AppendUint(%d): %v", v, err)
		}
		got, n, err := Parse(b)
		if err != nil || got != v || n != len(b) {
			t.Fatalf("round trip %d: got (%d,%d,%v) from %x", v, got, n, err, b)
		}
	}
	for shift := 0; shift < 62; shift++ {
		p := uint64(1) << shift
		check(p - 1)
		check(p)
		check(p + 1)
	}
	check(Max)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		check(uint64(rng.Int63()) & Max)
	}
}
