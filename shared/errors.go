package shared

import "errors"

// ErrOutOfRange signals a parameter outside of its valid range.
var ErrOutOfRange = errors.New("out of range")
