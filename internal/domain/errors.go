package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrDisplayClosed   = errors.New("display closed")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrNotATerminal    = errors.New("not a terminal")
)
