package entities

import "errors"

var (
	// ErrNotFound means the requested entity does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means a required upstream call failed for transport
	// or decoding reasons.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrInvalidID means an identifier was not a positive integer.
	ErrInvalidID = errors.New("invalid entity id")
)
