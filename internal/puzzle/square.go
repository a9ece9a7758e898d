package puzzle

const (
	// Black marks a blocked square.
	Black byte = '#'
	// Blank marks an open square that holds no letter yet.
	Blank byte = ' '
)

// Square is a single cell of the grid.
// Char is Black, Blank or an upper-case ASCII letter.
// Number is the clue number printed in the square, or 0 for none.
type Square struct {
	Char   byte
	Number int
}

// IsWhite reports whether the square is open, filled or not.
func (s Square) IsWhite() bool {
	return s.Char != Black
}

// IsBlank reports whether the square is open and holds no letter.
func (s Square) IsBlank() bool {
	return s.Char == Blank
}

// HasLetter reports whether the square holds a letter.
func (s Square) HasLetter() bool {
	return s.Char != Black && s.Char != Blank
}

// normalizeLetter upper-cases an ASCII letter.
func normalizeLetter(c byte) (byte, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c, nil
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A', nil
	default:
		return 0, ErrInvalidLetter
	}
}
