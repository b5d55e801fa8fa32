// Package nurbs builds native NURBS curves from Go values or from JSON curve
// documents.
//
// There are two ways to obtain a Curve:
//
//	// From explicit parameters.
//	c := nurbs.New(3, controlPoints, knots)
//	defer c.Free()
//
//	// From the first record of a JSON document found in a scope.
//	c, err := nurbs.LoadFromResource("curve.json", nurbs.DirScope("assets"))
//	if errors.Is(err, nurbs.ErrResourceNotFound) { ... }
//
// Curve documents are JSON arrays of objects:
//
//	[
//	  {"degree": 3, "controlPoints": [[0,0,0,1], ...], "knotVector": [0,0,0,0,1,1,1,1]}
//	]
//
// Only the first record is used. Control points are homogeneous (x, y, z, w).
//
// Construction copies every input sequence exactly once into memory owned by
// the native curve object. The degree and the relationship between degree,
// control point count and knot count are not checked unless a Loader runs in
// strict mode; a malformed curve is otherwise reported by the evaluation
// engine that consumes it.
package nurbs
