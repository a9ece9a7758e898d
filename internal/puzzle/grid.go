package puzzle

import "fmt"

// DefaultSize is the side length of a new grid when none is requested.
const DefaultSize = 15

// Position is a zero-indexed, row-major coordinate.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Grid is a square matrix of Squares whose black/white pattern is closed
// under 90° rotation. A Grid is not safe for concurrent use.
type Grid struct {
	size  int
	cells [][]Square
	white int
}

// NewGrid returns an all-black grid of the given size.
func NewGrid(size int) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(size); err != nil {
		return nil, err
	}
	return g, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// WhiteCount returns the number of open squares.
func (g *Grid) WhiteCount() int {
	return g.white
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the square at (row, col). It panics if the coordinate is out
// of bounds, like indexing a slice.
func (g *Grid) At(row, col int) Square {
	return g.cells[row][col]
}

// Resize replaces the grid with an all-black matrix of the new size.
// The previous contents are discarded even when the size is unchanged.
func (g *Grid) Resize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cells := make([][]Square, size)
	for r := range cells {
		cells[r] = make([]Square, size)
		for c := range cells[r] {
			cells[r][c] = Square{Char: Black}
		}
	}

	g.size = size
	g.cells = cells
	g.white = 0
	return nil
}

// Images returns the distinct rotational images of (row, col): the cell
// itself, then its 90°, 180° and 270° rotations, skipping duplicates.
func (g *Grid) Images(row, col int) []Position {
	last := g.size - 1
	all := [4]Position{
		{row, col},
		{col, last - row},
		{last - row, last - col},
		{last - col, row},
	}

	out := make([]Position, 0, len(all))
	for _, p := range all {
		seen := false
		for _, q := range out {
			if p == q {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, p)
		}
	}
	return out
}

// Toggle flips (row, col) between black and blank and writes the same state
// to its rotational images. It returns the number of distinct squares that
// changed. Letters on squares turned black are lost.
func (g *Grid) Toggle(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.size, g.size)
	}

	next := Blank
	if g.cells[row][col].IsWhite() {
		next = Black
	}

	changed := 0
	for _, p := range g.Images(row, col) {
		sq := &g.cells[p.Row][p.Column]
		if sq.IsWhite() == (next != Black) {
			continue
		}
		sq.Char = next
		sq.Number = 0
		g.white += whiteDelta(next)
		changed++
	}
	return changed, nil
}

// whiteDelta is the change to the white tally when a square flips to c.
func whiteDelta(c byte) int {
	switch c {
	case Black:
		return -1
	case Blank:
		return 1
	default:
		panic(fmt.Sprintf("puzzle: invalid toggle character %q", c))
	}
}

// SetLetter writes a letter to a white square, upper-casing it.
func (g *Grid) SetLetter(row, col int, letter byte) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if !g.cells[row][col].IsWhite() {
		return fmt.Errorf("%w: (%d,%d)", ErrBlackSquare, row, col)
	}
	c, err := normalizeLetter(letter)
	if err != nil {
		return fmt.Errorf("%w: %q", err, letter)
	}
	g.cells[row][col].Char = c
	return nil
}

// ClearLetter resets a white square to Blank. Black squares are left alone.
func (g *Grid) ClearLetter(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if g.cells[row][col].IsWhite() {
		g.cells[row][col].Char = Blank
	}
	return nil
}

// Snapshot returns a deep copy of the squares for read-only consumers.
func (g *Grid) Snapshot() [][]Square {
	out := make([][]Square, g.size)
	for r, row := range g.cells {
		out[r] = make([]Square, len(row))
		copy(out[r], row)
	}
	return out
}

// String renders the grid one row per line, Black as '#' and Blank as '.'.
func (g *Grid) String() string {
	b := make([]byte, 0, g.size*(g.size+1))
	for _, row := range g.cells {
		for _, sq := range row {
			if sq.IsBlank() {
				b = append(b, '.')
				continue
			}
			b = append(b, sq.Char)
		}
		b = append(b, '\n')
	}
	return string(b)
}

// IsSymmetric reports whether the black/white pattern is closed under 90°
// rotation about the centre.
func (g *Grid) IsSymmetric() bool {
	last := g.size - 1
	for r, row := range g.cells {
		for c, sq := range row {
			if sq.IsWhite() != g.cells[c][last-r].IsWhite() {
				return false
			}
		}
	}
	return true
}

// Parse builds a grid from one string per row, using '#' for black squares,
// '.' or ' ' for blank squares and letters for filled squares. The layout
// must be square; symmetry is not enforced, see IsSymmetric.
func Parse(rows []string) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrInvalidSize, r, len(line), g.size)
		}
		for c := 0; c < len(line); c++ {
			switch ch := line[c]; ch {
			case Black:
			case '.', Blank:
				g.cells[r][c].Char = Blank
				g.white++
			default:
				l, err := normalizeLetter(ch)
				if err != nil {
					return nil, fmt.Errorf("row %d col %d: %w: %q", r, c, err, ch)
				}
				g.cells[r][c].Char = l
				g.white++
			}
		}
	}
	return g, nil
}
