package puzzle

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("puzzle: coordinates out of bounds")

	// ErrInvalidSize is returned for grid sizes smaller than one.
	ErrInvalidSize = errors.New("puzzle: grid size must be positive")

	// ErrInvalidLetter is returned when a character is not an ASCII letter.
	ErrInvalidLetter = errors.New("puzzle: not an ASCII letter")

	// ErrBlackSquare is returned when a letter is written to a black square.
	ErrBlackSquare = errors.New("puzzle: square is black")

	// ErrLengthMismatch is returned when a word does not fit a clue's path.
	ErrLengthMismatch = errors.New("puzzle: word length does not match clue")
)
