// Package errs collects the error kinds produced by the formula-directed
// serializer and deserializer. Each kind is its own type so callers can use
// errors.As to recover structured detail (the offending discriminant, the
// raw out-of-range value, ...) instead of matching on string messages.
package errs

import "fmt"

// OutOfBoundsError indicates the input is shorter than a required field.
type OutOfBoundsError struct{}

func (OutOfBoundsError) Error() string { return "zform: out of bounds" }

// WrongAddressError indicates a reference header points outside the input,
// or its size exceeds its address.
type WrongAddressError struct{}

func (WrongAddressError) Error() string { return "zform: wrong address" }

// WrongLengthError indicates leftover stack bytes after Finish, or a
// sequence's stack bytes not divisible by its element size.
type WrongLengthError struct{}

func (WrongLengthError) Error() string { return "zform: wrong length" }

// InvalidUsizeError indicates a decoded size value does not fit the host's
// int type.
type InvalidUsizeError struct{ Raw uint64 }

func (e InvalidUsizeError) Error() string {
	return fmt.Sprintf("zform: invalid usize: %d", e.Raw)
}

// InvalidIsizeError indicates a decoded signed size value does not fit the
// host's int type.
type InvalidIsizeError struct{ Raw int64 }

func (e InvalidIsizeError) Error() string {
	return fmt.Sprintf("zform: invalid isize: %d", e.Raw)
}

// WrongVariantError indicates an enum discriminant outside the declared set.
type WrongVariantError struct{ Tag uint32 }

func (e WrongVariantError) Error() string {
	return fmt.Sprintf("zform: wrong variant: %d", e.Tag)
}

// NonUtf8Error indicates a string payload was not valid UTF-8.
type NonUtf8Error struct{ Err error }

func (e NonUtf8Error) Error() string {
	return fmt.Sprintf("zform: non-utf8 payload: %v", e.Err)
}

func (e NonUtf8Error) Unwrap() error { return e.Err }

// BufferExhaustedError indicates a checked fixed buffer ran out of space.
type BufferExhaustedError struct{}

func (BufferExhaustedError) Error() string { return "zform: buffer exhausted" }

// BufferSizeRequiredError carries the total byte count a counting buffer
// would have needed to fit the serialized data.
type BufferSizeRequiredError struct{ Required int }

func (e BufferSizeRequiredError) Error() string {
	return fmt.Sprintf("zform: buffer size required: %d", e.Required)
}

// Sentinel values for the parameterless error kinds, so callers can compare
// with errors.Is without constructing a zero-value struct themselves.
var (
	ErrOutOfBounds     = OutOfBoundsError{}
	ErrWrongAddress    = WrongAddressError{}
	ErrWrongLength     = WrongLengthError{}
	ErrBufferExhausted = BufferExhaustedError{}
)
