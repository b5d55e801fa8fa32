package nurbs

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vec4 is a homogeneous control point: x, y, z and weight w.
type Vec4 [4]float32

// X returns the x component.
func (v Vec4) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec4) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec4) Z() float32 { return v[2] }

// W returns the weight.
func (v Vec4) W() float32 { return v[3] }

// UnmarshalJSON accepts an array of exactly four numbers.
func (v *Vec4) UnmarshalJSON(data []byte) error {
	var xs []float32
	if err := json.Unmarshal(data, &xs); err != nil {
		return err
	}
	if len(xs) != 4 {
		return &ComponentError{Got: len(xs)}
	}
	copy(v[:], xs)
	return nil
}

// Descriptor is one decoded curve record.
type Descriptor struct {
	Degree        int32     `json:"degree"`
	ControlPoints []Vec4    `json:"controlPoints"`
	KnotVector    []float32 `json:"knotVector"`
}

// UnmarshalJSON decodes a record and fails when a required field is missing
// or null. Unknown fields are ignored.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var raw struct {
		Degree        *int32     `json:"degree"`
		ControlPoints *[]Vec4    `json:"controlPoints"`
		KnotVector    *[]float32 `json:"knotVector"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Degree == nil:
		return &FieldError{Field: "degree"}
	case raw.ControlPoints == nil:
		return &FieldError{Field: "controlPoints"}
	case raw.KnotVector == nil:
		return &FieldError{Field: "knotVector"}
	}

	*d = Descriptor{
		Degree:        *raw.Degree,
		ControlPoints: *raw.ControlPoints,
		KnotVector:    *raw.KnotVector,
	}
	return nil
}

// Validate checks the shape of a clamped B-spline: degree at least 1, at
// least degree+1 control points with non-zero weights, and a non-decreasing
// knot vector of length len(ControlPoints)+degree+1.
func (d Descriptor) Validate() error {
	degree := int(d.Degree)
	if degree < 1 {
		return fmt.Errorf("%w: degree %d is below 1", ErrInvalidCurve, d.Degree)
	}
	if len(d.ControlPoints) < degree+1 {
		return fmt.Errorf("%w: %d control points, need at least %d", ErrInvalidCurve, len(d.ControlPoints), degree+1)
	}
	if want := len(d.ControlPoints) + degree + 1; len(d.KnotVector) != want {
		return fmt.Errorf("%w: %d knots, want %d", ErrInvalidCurve, len(d.KnotVector), want)
	}
	for i, p := range d.ControlPoints {
		if p.W() == 0 {
			return fmt.Errorf("%w: control point %d has zero weight", ErrInvalidCurve, i)
		}
	}
	for i, k := range d.KnotVector {
		if math.IsNaN(float64(k)) {
			return fmt.Errorf("%w: knot %d is NaN", ErrInvalidCurve, i)
		}
		if i > 0 && k < d.KnotVector[i-1] {
			return fmt.Errorf("%w: knot %d decreases", ErrInvalidCurve, i)
		}
	}
	return nil
}
