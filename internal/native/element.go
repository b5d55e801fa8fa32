package native

import "errors"

// Element is the set of fixed-size, pointer-free values a Buffer can carry.
type Element interface {
	~float32 | ~[4]float32
}

// ErrBufferConsumed is returned when a buffer handed to NewCurve is nil, has
// already been transferred to another curve, or has been freed.
var ErrBufferConsumed = errors.New("native: buffer already transferred or freed")

// ErrBufferTooLarge is returned when a buffer holds more elements than the
// native constructor can describe with a C int.
var ErrBufferTooLarge = errors.New("native: buffer exceeds native element count")
