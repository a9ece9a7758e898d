package puzzle

import (
	"fmt"
	"strings"
)

// Direction is the orientation of a clue.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText encodes the direction as "across" or "down".
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Across, Down:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("puzzle: invalid direction %d", int(d))
	}
}

// UnmarshalText accepts "across" or "down", in any case.
func (d *Direction) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "across":
		*d = Across
	case "down":
		*d = Down
	default:
		return fmt.Errorf("puzzle: invalid direction %q", b)
	}
	return nil
}

// step returns the row and column increments for one square along d.
func (d Direction) step() (int, int) {
	if d == Down {
		return 1, 0
	}
	return 0, 1
}

// Clue is a derived view of one word slot. It references the grid's
// coordinates but owns no squares; the clue list is rebuilt, never edited.
type Clue struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
	// WordLengths holds one length per segment of the answer. Only
	// single-segment answers are produced.
	WordLengths   []int    `json:"word_lengths"`
	StartPosition Position `json:"start_position"`
	Text          string   `json:"text"`
	// Answer is the word currently written along the path, empty unless
	// every square on it holds a letter.
	Answer string `json:"answer,omitempty"`
}

// PlaceholderText is the prose attached to freshly extracted clues.
const PlaceholderText = "Placeholder"

// Length returns the total number of squares in the clue's path.
func (c Clue) Length() int {
	n := 0
	for _, l := range c.WordLengths {
		n += l
	}
	return n
}

// Cells returns the positions along the clue's path in reading order.
func (c Clue) Cells() []Position {
	dr, dc := c.Direction.step()
	n := c.Length()
	out := make([]Position, n)
	for i := range n {
		out[i] = Position{
			Row:    c.StartPosition.Row + i*dr,
			Column: c.StartPosition.Column + i*dc,
		}
	}
	return out
}

// Label formats the clue as "12 across (5)".
func (c Clue) Label() string {
	lens := make([]string, len(c.WordLengths))
	for i, l := range c.WordLengths {
		lens[i] = fmt.Sprint(l)
	}
	return fmt.Sprintf("%d %s (%s)", c.Number, c.Direction, strings.Join(lens, ","))
}
