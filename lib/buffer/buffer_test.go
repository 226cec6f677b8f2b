package buffer

import (
	"errors"
	"github.com/google/go-cmp/cmp"
	"io"
	"testing"
)

var (
	_ io.Writer     = (*Buffer)(nil)
	_ io.ByteWriter = (*Buffer)(nil)
)

// expectPrecondition fails the test unless fn panics with a *PreconditionError
func expectPrecondition(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected %s to panic", op)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected an error panic value, got %T: %v", r, r)
		}
		var pe *PreconditionError
		if !errors.As(err, &pe) {
			t.Fatalf("Expected *PreconditionError, got %T: %v", r, r)
		}
		if pe.Op != op {
			t.Errorf("Op mismatch: expected %q, got %q", op, pe.Op)
		}
	}()
	fn()
}

func TestNew(t *testing.T) {
	for _, capacity := range []int{0, 1, 128} {
		buf := New(capacity)
		if buf.Len() != 0 {
			t.Errorf("New(%d): expected length 0, got %d", capacity, buf.Len())
		}
		if buf.Cap() != capacity {
			t.Errorf("New(%d): expected capacity %d, got %d", capacity, capacity, buf.Cap())
		}
		if got := buf.Bytes(); len(got) != 0 {
			t.Errorf("New(%d): expected no bytes, got %v", capacity, got)
		}
	}
}

func TestGrowIsExact(t *testing.T) {
	buf := New(2)
	_, _ = buf.Write([]byte{1, 2})

	buf.Grow(5)
	if buf.Cap() != 7 {
		t.Errorf("Expected exact growth to 7, got capacity %d", buf.Cap())
	}

	// enough room already, no reallocation
	before := &buf.Raw()[0]
	buf.Grow(5)
	if buf.Cap() != 7 || &buf.Raw()[0] != before {
		t.Errorf("Grow reallocated although enough capacity was left")
	}

	if diff := cmp.Diff([]byte{1, 2}, buf.Bytes()); diff != "" {
		t.Errorf("Written bytes changed by Grow (-want +got):\n%s", diff)
	}
}

// TestRawAdvance writes through the exposed store the way the fast encoder does
func TestRawAdvance(t *testing.T) {
	buf := New(0)

	buf.Grow(4)
	n := copy(buf.Raw()[buf.Len():], []byte{0xde, 0xad, 0xbe, 0xef})
	buf.Advance(n)

	got := buf.Bytes()
	if len(got) != 4 {
		t.Fatalf("Expected 4 bytes, got %d", len(got))
	}
	if diff := cmp.Diff([]byte{0xde, 0xad, 0xbe, 0xef}, got); diff != "" {
		t.Errorf("Bytes mismatch (-want +got):\n%s", diff)
	}
}

// TestRepeatedGrowthPreservesData grows the buffer one chunk at a time and checks
// that no previously written byte is lost when the store is replaced
func TestRepeatedGrowthPreservesData(t *testing.T) {
	const rounds = 64
	buf := New(0)
	var want []byte

	for i := 0; i < rounds; i++ {
		chunk := []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3)}
		want = append(want, chunk...)

		buf.Grow(len(chunk))
		copy(buf.Raw()[buf.Len():], chunk)
		buf.Advance(len(chunk))

		if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
			t.Fatalf("Round %d: data lost on growth (-want +got):\n%s", i, diff)
		}
	}

	if buf.Cap() != rounds*4 {
		t.Errorf("Expected capacity %d after exact growth, got %d", rounds*4, buf.Cap())
	}
}

func TestBytesIsIdempotentCopy(t *testing.T) {
	buf := New(8)
	_, _ = buf.Write([]byte("abcd"))

	first := buf.Bytes()
	second := buf.Bytes()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Bytes not idempotent (-first +second):\n%s", diff)
	}

	// mutating the result must not leak into the buffer
	first[0] = 'X'
	if got := buf.Bytes(); got[0] != 'a' {
		t.Errorf("Bytes aliases the backing store: got %q", got)
	}

	// neither must a reset followed by new writes change an earlier result
	buf.Reset()
	_, _ = buf.Write([]byte("wxyz"))
	if string(second) != "abcd" {
		t.Errorf("Earlier result changed after reuse: got %q", second)
	}
}

func TestWriteAndWriteByte(t *testing.T) {
	buf := New(0)

	n, err := buf.Write([]byte{1, 2, 3})
	if err != nil || n != 3 {
		t.Fatalf("Write returned (%d, %v)", n, err)
	}
	for _, c := range []byte{4, 5} {
		if err := buf.WriteByte(c); err != nil {
			t.Fatalf("WriteByte returned %v", err)
		}
	}
	n, err = buf.Write(nil)
	if err != nil || n != 0 {
		t.Fatalf("Write(nil) returned (%d, %v)", n, err)
	}

	if diff := cmp.Diff([]byte{1, 2, 3, 4, 5}, buf.Bytes()); diff != "" {
		t.Errorf("Bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroValue(t *testing.T) {
	var buf Buffer
	_ = buf.WriteByte(7)
	if diff := cmp.Diff([]byte{7}, buf.Bytes()); diff != "" {
		t.Errorf("Zero value buffer not usable (-want +got):\n%s", diff)
	}
}

func TestPreconditions(t *testing.T) {
	testCases := []struct {
		name string
		op   string
		fn   func()
	}{
		{
			name: "Negative initial capacity",
			op:   "new",
			fn:   func() { New(-1) },
		},
		{
			name: "Negative grow",
			op:   "grow",
			fn:   func() { New(0).Grow(-4) },
		},
		{
			name: "Negative advance",
			op:   "advance",
			fn:   func() { New(4).Advance(-1) },
		},
		{
			name: "Advance past capacity",
			op:   "advance",
			fn:   func() { New(4).Advance(5) },
		},
		{
			name: "Advance past capacity after writes",
			op:   "advance",
			fn: func() {
				buf := New(4)
				_, _ = buf.Write([]byte{1, 2, 3})
				buf.Advance(2)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expectPrecondition(t, tc.op, tc.fn)
		})
	}
}
