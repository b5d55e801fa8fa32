package nurbs

import "github.com/hsiuhsiu/opennurbs-go/internal/native"

// Element is the set of values that can be marshaled into a Buffer.
type Element = native.Element

// Buffer is a marshaled copy of a sequence, owned by the caller until it is
// transferred to a curve with NewFromBuffers.
type Buffer[T Element] = native.Buffer[T]

// Marshal copies seq into a new Buffer with one allocation and one bulk copy.
// An empty seq yields a zero-length Buffer with no backing allocation.
func Marshal[T Element](seq []T) *Buffer[T] {
	return native.Marshal(seq)
}
