package runtime

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ElementKind enumerates the element types a typed-array view can carry.
type ElementKind int

const (
	ElementUint8 ElementKind = iota
	ElementInt8
	ElementUint16
	ElementInt16
	ElementUint32
	ElementInt32
	ElementFloat32
	ElementFloat64
)

func (k ElementKind) String() string {
	switch k {
	case ElementUint8:
		return "u8"
	case ElementInt8:
		return "i8"
	case ElementUint16:
		return "u16"
	case ElementInt16:
		return "i16"
	case ElementUint32:
		return "u32"
	case ElementInt32:
		return "i32"
	case ElementFloat32:
		return "f32"
	case ElementFloat64:
		return "f64"
	default:
		return fmt.Sprintf("unknown_element_%d", int(k))
	}
}

// ByteSize returns the storage width of one element.
func (k ElementKind) ByteSize() int {
	switch k {
	case ElementUint8, ElementInt8:
		return 1
	case ElementUint16, ElementInt16:
		return 2
	case ElementUint32, ElementInt32, ElementFloat32:
		return 4
	default:
		return 8
	}
}

//-----------------------------------------------------------------------------
// Array buffers
//-----------------------------------------------------------------------------

// ArrayBufferValue owns a contiguous span of bytes shared by any number of
// views. Detachment is irreversible and is a defined state, not an error:
// views over a detached buffer report zero-valued metrics and absent reads.
type ArrayBufferValue struct {
	data     []byte
	detached bool
}

// NewArrayBuffer allocates a zero-filled buffer of the given byte length.
func NewArrayBuffer(byteLength int) *ArrayBufferValue {
	return &ArrayBufferValue{data: make([]byte, byteLength)}
}

func (b *ArrayBufferValue) Kind() Kind { return KindArrayBuffer }

// Detach releases the storage. All outstanding views transition to the
// zero/absent regime; the buffer handle itself stays valid.
func (b *ArrayBufferValue) Detach() {
	b.data = nil
	b.detached = true
}

// IsDetached reports whether the storage has been released.
func (b *ArrayBufferValue) IsDetached() bool {
	return b.detached
}

// ByteLength returns the byte size of the storage, 0 once detached.
func (b *ArrayBufferValue) ByteLength() int {
	return len(b.data)
}

//-----------------------------------------------------------------------------
// Typed-array views
//-----------------------------------------------------------------------------

// TypedArrayValue is a logical window (offset + element count) over a shared
// buffer. The view does not own the buffer; the buffer's owner may detach it
// at any point, so every read consults the liveness flag instead of trusting
// the stored geometry.
type TypedArrayValue struct {
	elem       ElementKind
	buffer     *ArrayBufferValue
	length     int
	byteOffset int
}

// NewTypedArray wraps a view over buf. The requested window must fit within
// the buffer at construction time.
func NewTypedArray(elem ElementKind, buf *ArrayBufferValue, byteOffset, length int) (*TypedArrayValue, error) {
	if buf == nil {
		return nil, fmt.Errorf("typed array requires a buffer")
	}
	if byteOffset < 0 || length < 0 {
		return nil, fmt.Errorf("typed array geometry must be non-negative")
	}
	if byteOffset%elem.ByteSize() != 0 {
		return nil, fmt.Errorf("byte offset %d is not aligned to %s elements", byteOffset, elem)
	}
	if end := byteOffset + length*elem.ByteSize(); end > buf.ByteLength() {
		return nil, fmt.Errorf("view of %d %s elements at offset %d exceeds buffer length %d",
			length, elem, byteOffset, buf.ByteLength())
	}
	return &TypedArrayValue{elem: elem, buffer: buf, length: length, byteOffset: byteOffset}, nil
}

// NewTypedArrayOf allocates a fresh buffer and fills a view with the given
// element values.
func NewTypedArrayOf(elem ElementKind, values ...float64) *TypedArrayValue {
	buf := NewArrayBuffer(len(values) * elem.ByteSize())
	view, err := NewTypedArray(elem, buf, 0, len(values))
	if err != nil {
		// Geometry is derived from the input; failure here is a programming error.
		panic(err)
	}
	for i, v := range values {
		view.Set(i, v)
	}
	return view
}

func (v *TypedArrayValue) Kind() Kind { return KindTypedArray }

// ElementKind returns the element type of the view.
func (v *TypedArrayValue) ElementKind() ElementKind { return v.elem }

// Buffer returns the underlying buffer handle, detached or not.
func (v *TypedArrayValue) Buffer() *ArrayBufferValue { return v.buffer }

// ArrayLength returns the element count the view was constructed with. It is
// the iteration snapshot source and deliberately ignores detachment; the
// length accessor applies the detachment rule on top.
func (v *TypedArrayValue) ArrayLength() int { return v.length }

// ByteLength returns the byte span of the view's window.
func (v *TypedArrayValue) ByteLength() int { return v.length * v.elem.ByteSize() }

// ByteOffset returns the view's starting offset into the buffer.
func (v *TypedArrayValue) ByteOffset() int { return v.byteOffset }

// Get reads element i. A detached buffer or an out-of-range index yields the
// undefined value, never a fault or an out-of-bounds access.
func (v *TypedArrayValue) Get(i int) Value {
	if v.buffer.IsDetached() || i < 0 || i >= v.length {
		return UndefinedValue{}
	}
	at := v.byteOffset + i*v.elem.ByteSize()
	raw := v.buffer.data
	switch v.elem {
	case ElementUint8:
		return NumberValue{Val: float64(raw[at])}
	case ElementInt8:
		return NumberValue{Val: float64(int8(raw[at]))}
	case ElementUint16:
		return NumberValue{Val: float64(binary.LittleEndian.Uint16(raw[at:]))}
	case ElementInt16:
		return NumberValue{Val: float64(int16(binary.LittleEndian.Uint16(raw[at:])))}
	case ElementUint32:
		return NumberValue{Val: float64(binary.LittleEndian.Uint32(raw[at:]))}
	case ElementInt32:
		return NumberValue{Val: float64(int32(binary.LittleEndian.Uint32(raw[at:])))}
	case ElementFloat32:
		return NumberValue{Val: float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[at:])))}
	default:
		return NumberValue{Val: math.Float64frombits(binary.LittleEndian.Uint64(raw[at:]))}
	}
}

// Set writes element i, truncating the double to the element type. Writes to
// a detached buffer or out-of-range index are dropped silently, matching the
// absent-read rule.
func (v *TypedArrayValue) Set(i int, val float64) {
	if v.buffer.IsDetached() || i < 0 || i >= v.length {
		return
	}
	at := v.byteOffset + i*v.elem.ByteSize()
	raw := v.buffer.data
	if math.IsNaN(val) && v.elem != ElementFloat32 && v.elem != ElementFloat64 {
		val = 0
	}
	switch v.elem {
	case ElementUint8:
		raw[at] = byte(uint8(int64(val)))
	case ElementInt8:
		raw[at] = byte(int8(int64(val)))
	case ElementUint16:
		binary.LittleEndian.PutUint16(raw[at:], uint16(int64(val)))
	case ElementInt16:
		binary.LittleEndian.PutUint16(raw[at:], uint16(int16(int64(val))))
	case ElementUint32:
		binary.LittleEndian.PutUint32(raw[at:], uint32(int64(val)))
	case ElementInt32:
		binary.LittleEndian.PutUint32(raw[at:], uint32(int32(int64(val))))
	case ElementFloat32:
		binary.LittleEndian.PutUint32(raw[at:], math.Float32bits(float32(val)))
	default:
		binary.LittleEndian.PutUint64(raw[at:], math.Float64bits(val))
	}
}
