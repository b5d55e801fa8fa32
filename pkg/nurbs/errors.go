package nurbs

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/opennurbs-go/internal/native"
)

var (
	// ErrResourceNotFound is returned when a resource name cannot be resolved
	// in the given scope. Nothing is read in that case.
	ErrResourceNotFound = errors.New("nurbs: resource not found")

	// ErrNoRecordsDecoded is returned when a curve document decodes to an
	// empty array.
	ErrNoRecordsDecoded = errors.New("nurbs: no curve records decoded")

	// ErrRootNotArray is returned by JSONDecoder when the document root is
	// null instead of an array.
	ErrRootNotArray = errors.New("nurbs: document root is not an array")

	// ErrInvalidCurve is returned by Descriptor.Validate and by strict loaders.
	ErrInvalidCurve = errors.New("nurbs: invalid curve")

	// ErrBufferConsumed is returned by NewFromBuffers when a buffer is nil or
	// has already been transferred or freed.
	ErrBufferConsumed = native.ErrBufferConsumed

	// ErrBufferTooLarge is returned by NewFromBuffers when a buffer holds more
	// elements than the native constructor accepts.
	ErrBufferTooLarge = native.ErrBufferTooLarge
)

// IsNothingToConstruct reports whether err means that there was no curve to
// build, either because the resource is missing or because it held no records.
func IsNothingToConstruct(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, ErrNoRecordsDecoded)
}

// FieldError reports a required record field that is absent or null.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("nurbs: missing required field %q", e.Field)
}

// ComponentError reports a control point without exactly four components.
type ComponentError struct {
	Got int
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("nurbs: control point has %d components, want 4", e.Got)
}

// RecordError locates a decode failure inside a curve document.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("nurbs: record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
