//go:build !cgo || windows

package native

import "unsafe"

// goCurve mirrors the native curve struct on the Go heap.
type goCurve struct {
	degree        int32
	controlPoints unsafe.Pointer
	count         int
	knots         unsafe.Pointer
	knotCount     int
}

type curveHandle = *goCurve

// allocate returns size bytes of 8-byte aligned Go memory. The garbage
// collector keeps it alive for as long as an unsafe.Pointer refers to it.
func allocate(size uintptr) unsafe.Pointer {
	words := make([]uint64, (size+7)/8)
	return unsafe.Pointer(&words[0])
}

// release is a no-op; the garbage collector reclaims the memory once the last
// reference is dropped.
func release(unsafe.Pointer) {}

func createCurve(degree int32, controlPoints unsafe.Pointer, count int, knots unsafe.Pointer, knotCount int) curveHandle {
	return &goCurve{
		degree:        degree,
		controlPoints: controlPoints,
		count:         count,
		knots:         knots,
		knotCount:     knotCount,
	}
}

func viewCurve(h curveHandle) curveView {
	return curveView(*h)
}

func freeCurve(h curveHandle) {
	h.controlPoints = nil
	h.knots = nil
	h.count = 0
	h.knotCount = 0
}

// Version returns an empty string; there is no native shim in this build.
func Version() string { return "" }
