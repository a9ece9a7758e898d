package puzzle

import "fmt"

// Wildcard stands for an unfilled square in a pattern.
const Wildcard = '*'

// ExtractClues renumbers the grid and returns its clues in scan order.
//
// Squares are visited row by row. A white square starts a down word when the
// square above is black or off the grid and the square below is Blank; across
// starts are judged the same way to the left and right. The running number
// advances once per white square visited, so clue numbers may skip. For a
// square starting both words the down clue comes first.
//
// Running it twice on an unchanged grid yields identical numbers and clues.
// Squares holding letters do not count as Blank, so a filled grid loses
// clues if scanned again.
func (g *Grid) ExtractClues() []Clue {
	var clues []Clue
	last := g.size - 1
	next := 1

	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			sq := &g.cells[r][c]
			if !sq.IsWhite() {
				sq.Number = 0
				continue
			}

			downStart := (r == 0 || g.cells[r-1][c].Char == Black) &&
				r != last && g.cells[r+1][c].Char == Blank
			acrossStart := (c == 0 || g.cells[r][c-1].Char == Black) &&
				c != last && g.cells[r][c+1].Char == Blank

			sq.Number = 0
			if downStart || acrossStart {
				sq.Number = next
			}
			if downStart {
				clues = append(clues, g.newClue(next, r, c, Down))
			}
			if acrossStart {
				clues = append(clues, g.newClue(next, r, c, Across))
			}
			next++
		}
	}
	return clues
}

func (g *Grid) newClue(number, row, col int, d Direction) Clue {
	dr, dc := d.step()
	n := 0
	for r, c := row, col; r < g.size && c < g.size && g.cells[r][c].IsWhite(); r, c = r+dr, c+dc {
		n++
	}

	clue := Clue{
		Number:        number,
		Direction:     d,
		WordLengths:   []int{n},
		StartPosition: Position{Row: row, Column: col},
		Text:          PlaceholderText,
	}
	clue.Answer = g.answer(clue)
	return clue
}

// answer returns the letters along the clue, or "" if any square on the
// path is not a letter.
func (g *Grid) answer(c Clue) string {
	b := make([]byte, 0, c.Length())
	for _, p := range c.Cells() {
		if !g.InBounds(p.Row, p.Column) {
			return ""
		}
		sq := g.cells[p.Row][p.Column]
		if !sq.HasLetter() {
			return ""
		}
		b = append(b, sq.Char)
	}
	return string(b)
}

// Pattern reads the clue's path, writing Wildcard for Blank squares and the
// letter for filled ones.
func (g *Grid) Pattern(c Clue) (string, error) {
	b := make([]byte, 0, c.Length())
	for _, p := range c.Cells() {
		if !g.InBounds(p.Row, p.Column) {
			return "", fmt.Errorf("clue %s: %w: %s", c.Label(), ErrOutOfBounds, p)
		}
		sq := g.cells[p.Row][p.Column]
		switch {
		case sq.IsBlank():
			b = append(b, Wildcard)
		case sq.HasLetter():
			b = append(b, sq.Char)
		default:
			return "", fmt.Errorf("clue %s: %w: %s", c.Label(), ErrBlackSquare, p)
		}
	}
	return string(b), nil
}

// Place writes word along the clue's path, one letter per square, replacing
// whatever letters were there. It returns the squares whose content changed.
// Nothing is written if the word does not fit.
func (g *Grid) Place(c Clue, word string) ([]Position, error) {
	cells := c.Cells()
	if len(word) != len(cells) {
		return nil, fmt.Errorf("clue %s: %w: %q", c.Label(), ErrLengthMismatch, word)
	}

	letters := make([]byte, len(word))
	for i, p := range cells {
		if !g.InBounds(p.Row, p.Column) {
			return nil, fmt.Errorf("clue %s: %w: %s", c.Label(), ErrOutOfBounds, p)
		}
		if !g.cells[p.Row][p.Column].IsWhite() {
			return nil, fmt.Errorf("clue %s: %w: %s", c.Label(), ErrBlackSquare, p)
		}
		l, err := normalizeLetter(word[i])
		if err != nil {
			return nil, fmt.Errorf("clue %s: %w: %q", c.Label(), err, word)
		}
		letters[i] = l
	}

	var changed []Position
	for i, p := range cells {
		sq := &g.cells[p.Row][p.Column]
		if sq.Char != letters[i] {
			sq.Char = letters[i]
			changed = append(changed, p)
		}
	}
	return changed, nil
}

// WithAnswers returns a copy of clues whose Answer fields are re-read from
// the grid. Clue numbering and paths are kept as they are.
func (g *Grid) WithAnswers(clues []Clue) []Clue {
	out := make([]Clue, len(clues))
	for i, c := range clues {
		c.WordLengths = append([]int(nil), c.WordLengths...)
		c.Answer = g.answer(c)
		out[i] = c
	}
	return out
}
