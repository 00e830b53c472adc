package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrInvalidLimit = errors.New("invalid search limit")
	ErrClosed       = errors.New("store closed")
)
