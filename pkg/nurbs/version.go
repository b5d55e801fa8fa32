package nurbs

import "github.com/hsiuhsiu/opennurbs-go/internal/native"

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this module. In development it
// defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version string reported by the native shim, or
// "go-heap" when the module was built without cgo.
func NativeVersion() string {
	if v := native.Version(); v != "" {
		return v
	}
	return "go-heap"
}
