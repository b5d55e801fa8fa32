package native_test

import (
	"testing"

	"github.com/hsiuhsiu/opennurbs-go/internal/native"
)

// TestMarshalRoundTrip checks that the reported count equals the input length
// and that reading the buffer back yields the input.
func TestMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		seq  []float32
	}{
		{"single", []float32{1.5}},
		{"clamped knots", []float32{0, 0, 0, 0, 1, 1, 1, 1}},
		{"negative and large", []float32{-1e30, -2, 0, 3.25, 1e30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := native.Marshal(tt.seq)
			defer buf.Free()

			if buf.Len() != len(tt.seq) {
				t.Fatalf("Len() = %d, want %d", buf.Len(), len(tt.seq))
			}
			got := buf.Elements()
			if len(got) != len(tt.seq) {
				t.Fatalf("Elements() returned %d values, want %d", len(got), len(tt.seq))
			}
			for i := range got {
				if got[i] != tt.seq[i] {
					t.Errorf("element %d = %v, want %v", i, got[i], tt.seq[i])
				}
			}
		})
	}
}

func TestMarshalVec4RoundTrip(t *testing.T) {
	seq := [][4]float32{{0, 0, 0, 1}, {1, 1, 0, 1}, {2, 0, 0, 0.5}}
	buf := native.Marshal(seq)
	defer buf.Free()

	if buf.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", buf.Len())
	}
	for i, v := range buf.Elements() {
		if v != seq[i] {
			t.Errorf("element %d = %v, want %v", i, v, seq[i])
		}
	}
}

// TestMarshalCopiesInput verifies that mutating the source after marshaling
// leaves the buffer untouched.
func TestMarshalCopiesInput(t *testing.T) {
	seq := []float32{1, 2, 3}
	buf := native.Marshal(seq)
	defer buf.Free()

	for i := range seq {
		seq[i] = -99
	}
	seq = append(seq, 4)

	got := buf.Elements()
	want := []float32{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("buffer length changed: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("buffer mutated at index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// TestMarshalEmpty pins down the zero-length case: a live, transferable
// buffer with no backing allocation.
func TestMarshalEmpty(t *testing.T) {
	for _, seq := range [][]float32{nil, {}} {
		buf := native.Marshal(seq)
		if buf == nil {
			t.Fatal("Marshal returned nil for an empty sequence")
		}
		if buf.Len() != 0 {
			t.Errorf("Len() = %d, want 0", buf.Len())
		}
		if !buf.IsNull() {
			t.Error("empty buffer should have a null pointer")
		}
		if !buf.Owned() {
			t.Error("empty buffer should still be transferable")
		}
		if got := buf.Elements(); got != nil {
			t.Errorf("Elements() = %v, want nil", got)
		}
		buf.Free()
	}
}

func TestBufferFreeIsIdempotent(t *testing.T) {
	buf := native.Marshal([]float32{1, 2})
	buf.Free()
	buf.Free()

	if buf.Owned() {
		t.Error("freed buffer still reports ownership")
	}
	if buf.Len() != 0 {
		t.Errorf("freed buffer Len() = %d, want 0", buf.Len())
	}

	var nilBuf *native.Buffer[float32]
	nilBuf.Free()
	if nilBuf.Len() != 0 || nilBuf.Owned() {
		t.Error("nil buffer should be empty and unowned")
	}
}
