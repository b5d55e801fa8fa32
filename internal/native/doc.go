// Package native holds every piece of code that touches memory owned by the
// native curve object.
//
// # Design Principles
//
// 1. Isolation: this is the only package that imports "C" or "unsafe". The
//    public API in pkg/nurbs works with Go slices and opaque handles.
//
// 2. Ownership transfer: Marshal allocates exactly once and copies exactly
//    once. The resulting Buffer is handed to NewCurve, which moves the memory
//    into the native object. After the move the Buffer no longer refers to it.
//
// 3. Counts travel with buffers: NewCurve derives count and knotCount from the
//    buffers it is given, never from a separately tracked value.
//
// # Builds
//
// With cgo enabled (and not on Windows) buffers live in C memory obtained from
// malloc and the curve object is a small C struct that frees them. Otherwise
// the same API is served from the Go heap; semantics are identical apart from
// who eventually reclaims the memory.
//
// # Threading
//
// Nothing in this package keeps global state. Distinct Buffers and Curves may
// be used from different goroutines; a single Curve must not be freed while
// another goroutine is reading from it.
package native
