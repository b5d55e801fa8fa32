package native

import (
	"runtime"
	"unsafe"
)

// Buffer is a contiguous, stable-address copy of a sequence of elements. The
// memory is owned by the Buffer until it is transferred with NewCurve.
type Buffer[T Element] struct {
	ptr   unsafe.Pointer
	n     int
	owned bool
}

// Marshal copies seq into a freshly allocated buffer. It performs one
// allocation and one bulk copy; later changes to seq are not visible through
// the buffer.
//
// A zero-length seq yields a live Buffer with a null pointer and Len 0. It is
// transferable like any other buffer.
//
// Allocation failure is fatal: cgo's malloc aborts the process and the Go
// heap fallback panics with an out-of-memory error.
func Marshal[T Element](seq []T) *Buffer[T] {
	b := &Buffer[T]{n: len(seq), owned: true}
	if len(seq) > 0 {
		var zero T
		b.ptr = allocate(uintptr(len(seq)) * unsafe.Sizeof(zero))
		copy(unsafe.Slice((*T)(b.ptr), len(seq)), seq)
	}
	runtime.SetFinalizer(b, (*Buffer[T]).Free)
	return b
}

// Len returns the number of elements held by the buffer. It is 0 once the
// buffer has been transferred or freed.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Owned reports whether the buffer still owns its memory.
func (b *Buffer[T]) Owned() bool {
	return b != nil && b.owned
}

// IsNull reports whether the buffer has no backing allocation. This holds for
// zero-length buffers and for buffers that no longer own memory.
func (b *Buffer[T]) IsNull() bool {
	return b == nil || b.ptr == nil
}

// Elements returns a Go copy of the buffer contents.
func (b *Buffer[T]) Elements() []T {
	if b == nil || b.ptr == nil || b.n == 0 {
		return nil
	}
	out := make([]T, b.n)
	copy(out, unsafe.Slice((*T)(b.ptr), b.n))
	runtime.KeepAlive(b)
	return out
}

// Free releases a buffer that was never transferred. It is a no-op on nil,
// transferred or already freed buffers.
func (b *Buffer[T]) Free() {
	if b == nil || !b.owned {
		return
	}
	if b.ptr != nil {
		release(b.ptr)
	}
	b.ptr = nil
	b.n = 0
	b.owned = false
	runtime.SetFinalizer(b, nil)
}

// detach gives up ownership and returns the memory and element count to the
// caller. The buffer retains no reference afterwards.
func (b *Buffer[T]) detach() (unsafe.Pointer, int) {
	ptr, n := b.ptr, b.n
	b.ptr = nil
	b.n = 0
	b.owned = false
	runtime.SetFinalizer(b, nil)
	return ptr, n
}
