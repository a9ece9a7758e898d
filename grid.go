package main

import (
	"time"

	"github.com/bodul/xwordsetter/internal/puzzle"
)

// Cell is the renderer's read-only view of one square.
// A cell is either black or open; an open cell may carry a letter and the
// clue number printed in its corner.
type Cell struct {
	Black  bool   `json:"black"`
	Letter string `json:"letter,omitempty"`
	Number int    `json:"number,omitempty"`
}

// PuzzleView is a snapshot of a puzzle session for the grid and clue list
// renderers. It never aliases the session's grid.
type PuzzleView struct {
	ID         string        `json:"id"`
	Size       int           `json:"size"`
	WhiteCount int           `json:"white_count"`
	Locked     bool          `json:"locked"`
	Cells      [][]Cell      `json:"cells"`
	Clues      []puzzle.Clue `json:"clues"`
	CreatedAt  time.Time     `json:"created_at"`
}

// PuzzleSummary is a lightweight listing entry.
type PuzzleSummary struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	WhiteCount int       `json:"white_count"`
	ClueCount  int       `json:"clue_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func cellsFromSquares(squares [][]puzzle.Square) [][]Cell {
	cells := make([][]Cell, len(squares))
	for r, row := range squares {
		cells[r] = make([]Cell, len(row))
		for c, sq := range row {
			cell := Cell{Black: !sq.IsWhite(), Number: sq.Number}
			if sq.HasLetter() {
				cell.Letter = string(sq.Char)
			}
			cells[r][c] = cell
		}
	}
	return cells
}
