package runtime

import (
	"math"
	"testing"
)

func TestTypedArrayGeometryValidation(t *testing.T) {
	buf := NewArrayBuffer(8)
	if _, err := NewTypedArray(ElementInt32, buf, 1, 1); err == nil {
		t.Fatalf("expected misaligned offset to be rejected")
	}
	if _, err := NewTypedArray(ElementInt32, buf, 0, 3); err == nil {
		t.Fatalf("expected over-long view to be rejected")
	}
	if _, err := NewTypedArray(ElementInt32, nil, 0, 0); err == nil {
		t.Fatalf("expected nil buffer to be rejected")
	}
	view, err := NewTypedArray(ElementInt32, buf, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ByteOffset() != 4 || view.ArrayLength() != 1 || view.ByteLength() != 4 {
		t.Fatalf("unexpected geometry: offset=%d len=%d bytes=%d",
			view.ByteOffset(), view.ArrayLength(), view.ByteLength())
	}
}

func TestTypedArrayReadWriteRoundTrip(t *testing.T) {
	cases := []struct {
		elem   ElementKind
		values []float64
	}{
		{ElementUint8, []float64{0, 1, 255}},
		{ElementInt8, []float64{-128, -1, 127}},
		{ElementUint16, []float64{0, 512, 65535}},
		{ElementInt16, []float64{-32768, 7, 32767}},
		{ElementUint32, []float64{0, 1 << 20, 4294967295}},
		{ElementInt32, []float64{-2147483648, 3, 2147483647}},
		{ElementFloat64, []float64{-0.5, 3.25, 1e300}},
	}
	for _, tc := range cases {
		view := NewTypedArrayOf(tc.elem, tc.values...)
		for i, want := range tc.values {
			got, ok := view.Get(i).(NumberValue)
			if !ok {
				t.Fatalf("%s[%d]: expected number, got %#v", tc.elem, i, view.Get(i))
			}
			if got.Val != want {
				t.Fatalf("%s[%d] = %g, want %g", tc.elem, i, got.Val, want)
			}
		}
	}
}

func TestTypedArrayFloat32Narrowing(t *testing.T) {
	view := NewTypedArrayOf(ElementFloat32, 1.5)
	got, ok := view.Get(0).(NumberValue)
	if !ok || got.Val != 1.5 {
		t.Fatalf("expected exact 1.5 through f32, got %#v", view.Get(0))
	}
}

func TestTypedArrayOutOfRangeReadsAreAbsent(t *testing.T) {
	view := NewTypedArrayOf(ElementUint8, 1, 2, 3)
	if _, ok := view.Get(-1).(UndefinedValue); !ok {
		t.Fatalf("expected undefined for negative index, got %#v", view.Get(-1))
	}
	if _, ok := view.Get(3).(UndefinedValue); !ok {
		t.Fatalf("expected undefined past the end, got %#v", view.Get(3))
	}
}

func TestTypedArrayViewAtOffsetSharesBuffer(t *testing.T) {
	buf := NewArrayBuffer(8)
	full, err := NewTypedArray(ElementUint16, buf, 0, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tail, err := NewTypedArray(ElementUint16, buf, 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	full.Set(2, 777)
	got, ok := tail.Get(0).(NumberValue)
	if !ok || got.Val != 777 {
		t.Fatalf("expected shared storage through offset view, got %#v", tail.Get(0))
	}
}

func TestDetachmentSemantics(t *testing.T) {
	view := NewTypedArrayOf(ElementFloat64, 1.5, 2.5)
	buf := view.Buffer()
	buf.Detach()

	if !buf.IsDetached() {
		t.Fatalf("expected buffer to report detached")
	}
	if buf.ByteLength() != 0 {
		t.Fatalf("expected detached buffer byte length 0, got %d", buf.ByteLength())
	}
	if _, ok := view.Get(0).(UndefinedValue); !ok {
		t.Fatalf("expected absent read through detached buffer, got %#v", view.Get(0))
	}
	// Writes are dropped, not faults.
	view.Set(0, math.Pi)
	if _, ok := view.Get(0).(UndefinedValue); !ok {
		t.Fatalf("expected write to detached buffer to be dropped")
	}
	// The stored geometry survives for snapshot purposes.
	if view.ArrayLength() != 2 {
		t.Fatalf("expected stored length 2, got %d", view.ArrayLength())
	}
}
