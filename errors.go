package easel

import (
	"errors"
	"fmt"
)

// ErrLibrary is the root of every error easel reports. Use errors.Is to
// test for it or for one of the narrower sentinels below.
var ErrLibrary = errors.New("easel: library error")

// Narrower failure classes. Each wraps ErrLibrary.
var (
	// ErrInvalidArgument is returned when an argument violates its
	// documented constraint. The concrete error is an *ArgumentError.
	ErrInvalidArgument error = &classError{msg: "easel: invalid argument"}

	// ErrUnsupportedOperation is returned when an operation does not apply
	// to the receiver's variant or state.
	ErrUnsupportedOperation error = &classError{msg: "easel: unsupported operation"}
)

// State errors. Each wraps ErrUnsupportedOperation.
var (
	// ErrRemoved is returned by mutators of a renderable after Remove.
	ErrRemoved = fmt.Errorf("%w: renderable was removed", ErrUnsupportedOperation)

	// ErrClosed is returned by operations on a screen after Exit.
	ErrClosed = fmt.Errorf("%w: screen is closed", ErrUnsupportedOperation)

	// ErrDetached is returned when an operation needs a screen and the
	// renderable (usually a clone) has not been added to one.
	ErrDetached = fmt.Errorf("%w: renderable is not on a screen", ErrUnsupportedOperation)
)

type classError struct{ msg string }

func (e *classError) Error() string { return e.msg }
func (e *classError) Unwrap() error { return ErrLibrary }

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Op         string // operation, e.g. "NewRectangle"
	Arg        string // argument name
	Value      any
	Constraint string // e.g. "must be >= 0"
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("easel: %s: %s = %v: %s", e.Op, e.Arg, e.Value, e.Constraint)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func argError(op, arg string, value any, constraint string) error {
	return &ArgumentError{Op: op, Arg: arg, Value: value, Constraint: constraint}
}

// unsupported reports that kind does not implement op.
func unsupported(kind Kind, op string) error {
	return fmt.Errorf("%w: %s does not support %s", ErrUnsupportedOperation, kind, op)
}
