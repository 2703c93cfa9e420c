package serdes

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every FormatError via errors.Is.
	ErrFormat = errors.New("malformed binary data")

	// ErrSizeMismatch is returned by Encode when an entity's Size disagrees with the bytes it wrote.
	ErrSizeMismatch = errors.New("serialized size does not match computed size")
)

// FormatError reports a buffer that cannot be decoded: too short, a bad
// length prefix, a non-canonical boolean or unexpected trailing bytes.
type FormatError struct {
	Field  string
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s at offset %d: %s", e.Field, e.Offset, e.Reason)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func newFormatError(field string, offset int, format string, args ...any) *FormatError {
	return &FormatError{
		Field:  field,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}
