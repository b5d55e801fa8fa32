//go:build cgo && !windows

package native

/*
#include <stdlib.h>

typedef struct {
	float x, y, z, w;
} nurbs_vec4;

typedef struct {
	int degree;
	nurbs_vec4* control_points;
	int count;
	float* knots;
	int knot_count;
} nurbs_curve;

// Takes ownership of control_points and knots, including on failure.
static nurbs_curve* nurbs_curve_create(int degree, nurbs_vec4* control_points, int count, float* knots, int knot_count) {
	nurbs_curve* c = (nurbs_curve*)malloc(sizeof(nurbs_curve));
	if (c == NULL) {
		free(control_points);
		free(knots);
		return NULL;
	}
	c->degree = degree;
	c->control_points = control_points;
	c->count = count;
	c->knots = knots;
	c->knot_count = knot_count;
	return c;
}

static void nurbs_curve_free(nurbs_curve* c) {
	if (c == NULL) {
		return;
	}
	free(c->control_points);
	free(c->knots);
	free(c);
}

static const char* nurbs_shim_version(void) {
	return "nurbs-shim/1.0";
}
*/
import "C"

import "unsafe"

type curveHandle = *C.nurbs_curve

// allocate returns size bytes of C memory. C.malloc never returns nil; cgo
// crashes the program when the C allocator is out of memory.
func allocate(size uintptr) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

func release(ptr unsafe.Pointer) {
	C.free(ptr)
}

func createCurve(degree int32, controlPoints unsafe.Pointer, count int, knots unsafe.Pointer, knotCount int) curveHandle {
	h := C.nurbs_curve_create(
		C.int(degree),
		(*C.nurbs_vec4)(controlPoints),
		C.int(count),
		(*C.float)(knots),
		C.int(knotCount),
	)
	if h == nil {
		panic("native: out of memory allocating curve")
	}
	return h
}

func viewCurve(h curveHandle) curveView {
	return curveView{
		degree:        int32(h.degree),
		controlPoints: unsafe.Pointer(h.control_points),
		count:         int(h.count),
		knots:         unsafe.Pointer(h.knots),
		knotCount:     int(h.knot_count),
	}
}

func freeCurve(h curveHandle) {
	C.nurbs_curve_free(h)
}

// Version returns the version string reported by the native shim.
func Version() string {
	return C.GoString(C.nurbs_shim_version())
}
