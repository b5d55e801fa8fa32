package native

import (
	"math"
	"runtime"
	"unsafe"
)

// Curve is an opaque handle to a native NURBS curve. The native object owns
// the control point and knot buffers it was constructed with; their addresses
// stay fixed until Free.
type Curve struct {
	h curveHandle
}

// curveView is a read-only snapshot of the fields held by the native object.
type curveView struct {
	degree        int32
	controlPoints unsafe.Pointer
	count         int
	knots         unsafe.Pointer
	knotCount     int
}

// NewCurve moves both buffers into a new native curve. The element counts
// passed to the native constructor are the buffers' own lengths.
//
// Either both buffers are transferred or neither is: a nil, transferred or
// freed buffer fails with ErrBufferConsumed before anything moves. degree is
// passed through unchecked.
func NewCurve[P ~[4]float32, K ~float32](degree int32, controlPoints *Buffer[P], knots *Buffer[K]) (*Curve, error) {
	if !controlPoints.Owned() || !knots.Owned() {
		return nil, ErrBufferConsumed
	}
	if controlPoints.Len() > math.MaxInt32 || knots.Len() > math.MaxInt32 {
		return nil, ErrBufferTooLarge
	}

	cp, count := controlPoints.detach()
	kn, knotCount := knots.detach()

	c := &Curve{h: createCurve(degree, cp, count, kn, knotCount)}
	runtime.SetFinalizer(c, (*Curve).Free)
	return c, nil
}

func (c *Curve) view() curveView {
	if c == nil || c.h == nil {
		return curveView{}
	}
	return viewCurve(c.h)
}

// Degree returns the degree the curve was constructed with.
func (c *Curve) Degree() int32 {
	d := c.view().degree
	runtime.KeepAlive(c)
	return d
}

// ControlPointCount returns the number of control points owned by the curve.
func (c *Curve) ControlPointCount() int {
	n := c.view().count
	runtime.KeepAlive(c)
	return n
}

// KnotCount returns the number of knots owned by the curve.
func (c *Curve) KnotCount() int {
	n := c.view().knotCount
	runtime.KeepAlive(c)
	return n
}

// ControlPoints returns a copy of the curve's control points.
func (c *Curve) ControlPoints() [][4]float32 {
	v := c.view()
	if v.controlPoints == nil || v.count == 0 {
		return nil
	}
	out := make([][4]float32, v.count)
	copy(out, unsafe.Slice((*[4]float32)(v.controlPoints), v.count))
	runtime.KeepAlive(c)
	return out
}

// Knots returns a copy of the curve's knot vector.
func (c *Curve) Knots() []float32 {
	v := c.view()
	if v.knots == nil || v.knotCount == 0 {
		return nil
	}
	out := make([]float32, v.knotCount)
	copy(out, unsafe.Slice((*float32)(v.knots), v.knotCount))
	runtime.KeepAlive(c)
	return out
}

// Freed reports whether the native object has been released.
func (c *Curve) Freed() bool {
	return c == nil || c.h == nil
}

// Free releases the native object together with the buffers it owns. It is
// called by a finalizer if the owner never does; calling it more than once is
// harmless.
func (c *Curve) Free() {
	if c == nil || c.h == nil {
		return
	}
	freeCurve(c.h)
	c.h = nil
	runtime.SetFinalizer(c, nil)
}
