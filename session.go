package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bodul/xwordsetter/internal/autofill"
	"github.com/bodul/xwordsetter/internal/puzzle"
)

// maxGridSize bounds the grids the API will build.
const maxGridSize = 25

var (
	errLocked       = errors.New("grid is locked")
	errGridTooLarge = fmt.Errorf("grid size above %d", maxGridSize)
)

// ClueText is prose for one clue, addressed by number and direction.
type ClueText struct {
	Number    int              `json:"number"`
	Direction puzzle.Direction `json:"direction"`
	Text      string           `json:"text"`
}

// Session is a puzzle under construction. The grid has a single writer: every
// access goes through the session mutex, and readers get copies.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	grid   *puzzle.Grid
	clues  []puzzle.Clue
	locked bool
}

func newSession(id string, size int) (*Session, error) {
	if size > maxGridSize {
		return nil, errGridTooLarge
	}
	g, err := puzzle.NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		grid:      g,
	}, nil
}

// Toggle flips a square and its rotational images, then rebuilds the clue
// list. It returns the number of squares changed.
func (s *Session) Toggle(row, col int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return 0, errLocked
	}
	n, err := s.grid.Toggle(row, col)
	if err != nil {
		return 0, err
	}
	s.clues = s.grid.ExtractClues()
	return n, nil
}

// Resize replaces the grid with an all-black one and drops the clues.
func (s *Session) Resize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return errLocked
	}
	if size > maxGridSize {
		return errGridTooLarge
	}
	if err := s.grid.Resize(size); err != nil {
		return err
	}
	s.clues = nil
	return nil
}

// Renumber rebuilds the clue list from the grid. On a grid that already
// holds letters this drops words whose second square is filled.
func (s *Session) Renumber() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clues = s.grid.ExtractClues()
}

// SetLetter writes value to an open square; an empty value clears it.
func (s *Session) SetLetter(row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value = strings.TrimSpace(value)
	var err error
	switch len(value) {
	case 0:
		err = s.grid.ClearLetter(row, col)
	case 1:
		err = s.grid.SetLetter(row, col, value[0])
	default:
		err = fmt.Errorf("%w: %q", puzzle.ErrInvalidLetter, value)
	}
	if err != nil {
		return err
	}
	s.clues = s.grid.WithAnswers(s.clues)
	return nil
}

// SetLocked freezes or unfreezes the black/white pattern.
func (s *Session) SetLocked(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = locked
}

// Fill runs one auto-fill pass over the current clue list and refreshes
// the clue answers. The list itself is not rebuilt.
func (s *Session) Fill(m autofill.Matcher) ([]autofill.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := autofill.Fill(s.grid, s.clues, m)
	s.clues = s.grid.WithAnswers(s.clues)
	return results, err
}

// Clues returns a copy of the current clue list.
func (s *Session) Clues() []puzzle.Clue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.WithAnswers(s.clues)
}

// SetClueTexts attaches prose to the matching clues and returns how many
// were updated.
func (s *Session) SetClueTexts(texts []ClueText) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	type key struct {
		n int
		d puzzle.Direction
	}
	byKey := make(map[key]string, len(texts))
	for _, t := range texts {
		if t.Text != "" {
			byKey[key{t.Number, t.Direction}] = t.Text
		}
	}

	clues := s.grid.WithAnswers(s.clues)
	n := 0
	for i, c := range clues {
		if text, ok := byKey[key{c.Number, c.Direction}]; ok {
			clues[i].Text = text
			n++
		}
	}
	s.clues = clues
	return n
}

// View returns a snapshot of the session.
func (s *Session) View() PuzzleView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return PuzzleView{
		ID:         s.ID,
		Size:       s.grid.Size(),
		WhiteCount: s.grid.WhiteCount(),
		Locked:     s.locked,
		Cells:      cellsFromSquares(s.grid.Snapshot()),
		Clues:      s.grid.WithAnswers(s.clues),
		CreatedAt:  s.CreatedAt,
	}
}

// Summary returns the listing entry for the session.
func (s *Session) Summary() PuzzleSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return PuzzleSummary{
		ID:         s.ID,
		Size:       s.grid.Size(),
		WhiteCount: s.grid.WhiteCount(),
		ClueCount:  len(s.clues),
		CreatedAt:  s.CreatedAt,
	}
}
