package keccak

import (
	"errors"
	"fmt"
)

// UnsupportedLengthError is returned when a digest length selector is not one
// of the configurations the interface knows about.
type UnsupportedLengthError struct {
	Length OutputLength
}

func (e UnsupportedLengthError) Error() string {
	return fmt.Sprintf("unsupported digest length: %d bits", int(e.Length))
}

// IsUnsupportedLengthError returns whether err is an UnsupportedLengthError
func IsUnsupportedLengthError(err error) bool {
	var e UnsupportedLengthError
	return errors.As(err, &e)
}

// InvalidParametersError indicates that a sponge was configured with a rate and
// capacity that do not split the state width. The parameter table never
// produces one; it guards direct sponge construction.
type InvalidParametersError struct {
	Rate     int
	Capacity int
}

func (e InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid sponge parameters: rate %d, capacity %d (state width is %d bits)",
		e.Rate, e.Capacity, StateWidth)
}

// IsInvalidParametersError returns whether err is an InvalidParametersError
func IsInvalidParametersError(err error) bool {
	var e InvalidParametersError
	return errors.As(err, &e)
}

// InvalidStateError indicates that an operation was called out of order, for
// instance absorbing after squeezing started.
type InvalidStateError struct {
	err error
}

func NewInvalidStateErrorf(msg string, args ...interface{}) error {
	return InvalidStateError{fmt.Errorf(msg, args...)}
}

func (e InvalidStateError) Error() string { return e.err.Error() }
func (e InvalidStateError) Unwrap() error { return e.err }

// IsInvalidStateError returns whether err is an InvalidStateError
func IsInvalidStateError(err error) bool {
	var e InvalidStateError
	return errors.As(err, &e)
}

// InvalidInputError indicates that the caller's data does not match the bit
// length it claims to hold, or that a length is negative.
type InvalidInputError struct {
	err error
}

func NewInvalidInputErrorf(msg string, args ...interface{}) error {
	return InvalidInputError{fmt.Errorf(msg, args...)}
}

func (e InvalidInputError) Error() string { return e.err.Error() }
func (e InvalidInputError) Unwrap() error { return e.err }

// IsInvalidInputError returns whether err is an InvalidInputError
func IsInvalidInputError(err error) bool {
	var e InvalidInputError
	return errors.As(err, &e)
}
