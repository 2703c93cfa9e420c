package types

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is matched by every ArgumentError via errors.Is.
	ErrArgument = errors.New("invalid argument")

	// ErrRange is matched by every RangeError via errors.Is.
	ErrRange = errors.New("index out of range")
)

// ArgumentError is returned by constructors that receive an absent required field.
// Err, when set, is the validation failure behind Reason.
type ArgumentError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("argument %s must not be absent", e.Field)
	}
	return fmt.Sprintf("argument %s: %s", e.Field, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// RangeError is returned by index accessors called with an out-of-bounds index.
type RangeError struct {
	Collection string
	Index      int
	Length     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Collection, e.Index, e.Length)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// At returns items[i] or a RangeError naming collection.
func At[T any](collection string, items []T, i int) (T, error) {
	if i < 0 || i >= len(items) {
		var zero T
		return zero, &RangeError{Collection: collection, Index: i, Length: len(items)}
	}
	return items[i], nil
}

// TryAt returns items[i] and true, or the zero value and false when i is out of bounds.
func TryAt[T any](items []T, i int) (T, bool) {
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return items[i], true
}
