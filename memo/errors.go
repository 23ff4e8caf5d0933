package memo

import "errors"

// ErrInvalidLevel is the value Insert panics with when asked to insert at
// a level below 1. Levels count components, and a network of zero
// components does not exist.
var ErrInvalidLevel = errors.New("memo: level must be >= 1")
