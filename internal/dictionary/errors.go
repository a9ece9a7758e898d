package dictionary

import "errors"

var (
	// ErrUninitialized is returned when matching against an empty corpus.
	ErrUninitialized = errors.New("dictionary: corpus not loaded")

	// ErrFetch is returned when a remote word list cannot be retrieved.
	ErrFetch = errors.New("dictionary: fetch failed")
)
