package typograf

import "errors"

// ErrDuplicateRule indicates two catalog rules share the same identifier.
var ErrDuplicateRule = errors.New("typograf: duplicate rule id")

// ErrNilRule marks a catalog rule missing its Apply function.
var ErrNilRule = errors.New("typograf: rule has no apply function")
