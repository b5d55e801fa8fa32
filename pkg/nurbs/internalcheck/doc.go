// Package internalcheck holds static policy tests for the module.
//
// The tests load every package with golang.org/x/tools/go/packages and
// enforce that native memory handling stays inside internal/native: no other
// package may import "C" or "unsafe", and only the public nurbs package may
// import internal/native directly.
//
// # Internal Use Only
//
// This package has no API. Applications should use pkg/nurbs.
package internalcheck
