package nurbs

import "github.com/hsiuhsiu/opennurbs-go/internal/native"

// Curve is a constructed NURBS curve. The native object behind it owns copies
// of the degree, control points and knots. Call Free when done; curves that
// are dropped without Free are released by the garbage collector.
type Curve struct {
	native *native.Curve
}

// New builds a curve from explicit parameters. Both sequences are copied;
// the element counts handed to the native constructor are taken from the
// copies. degree is not checked against the data.
//
// New panics only if a sequence is longer than the native constructor can
// describe, which is treated like any other allocation failure.
func New(degree int32, controlPoints []Vec4, knots []float32) *Curve {
	c, err := NewFromBuffers(degree, Marshal(controlPoints), Marshal(knots))
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromBuffers transfers two marshaled buffers into a new curve. On success
// the buffers are empty and no longer own memory. On failure neither buffer
// has been touched.
func NewFromBuffers(degree int32, controlPoints *Buffer[Vec4], knots *Buffer[float32]) (*Curve, error) {
	c, err := native.NewCurve(degree, controlPoints, knots)
	if err != nil {
		return nil, err
	}
	return &Curve{native: c}, nil
}

// Degree returns the curve degree.
func (c *Curve) Degree() int32 {
	if c == nil {
		return 0
	}
	return c.native.Degree()
}

// ControlPointCount returns the number of control points.
func (c *Curve) ControlPointCount() int {
	if c == nil {
		return 0
	}
	return c.native.ControlPointCount()
}

// KnotCount returns the number of knots.
func (c *Curve) KnotCount() int {
	if c == nil {
		return 0
	}
	return c.native.KnotCount()
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []Vec4 {
	if c == nil {
		return nil
	}
	raw := c.native.ControlPoints()
	if raw == nil {
		return nil
	}
	out := make([]Vec4, len(raw))
	for i, p := range raw {
		out[i] = Vec4(p)
	}
	return out
}

// Knots returns a copy of the knot vector.
func (c *Curve) Knots() []float32 {
	if c == nil {
		return nil
	}
	return c.native.Knots()
}

// Descriptor returns the curve's data as a record.
func (c *Curve) Descriptor() Descriptor {
	return Descriptor{
		Degree:        c.Degree(),
		ControlPoints: c.ControlPoints(),
		KnotVector:    c.Knots(),
	}
}

// Free releases the native object and its buffers. Calling Free more than
// once is harmless.
func (c *Curve) Free() {
	if c == nil {
		return
	}
	c.native.Free()
}
