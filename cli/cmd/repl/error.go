package repl

import "errors"

// ErrOutOfBounds is returned for history indices outside the history.
var ErrOutOfBounds = errors.New("index out of range")
