package main

import (
	"errors"
	"testing"

	"github.com/bodul/xwordsetter/internal/dictionary"
	"github.com/bodul/xwordsetter/internal/puzzle"
)

// plusSession opens row 2 and column 2 of a 5x5 grid.
func plusSession(t *testing.T) *Session {
	t.Helper()
	p, err := newSession("test", 5)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	for _, c := range []int{0, 1, 2} {
		if _, err := p.Toggle(2, c); err != nil {
			t.Fatalf("toggle (2,%d): %v", c, err)
		}
	}
	return p
}

func TestSessionToggleRebuildsClues(t *testing.T) {
	p := plusSession(t)

	clues := p.Clues()
	if len(clues) != 2 {
		t.Fatalf("expected 2 clues, got %d", len(clues))
	}
	if clues[0].Number != 1 || clues[0].Direction != puzzle.Down {
		t.Fatalf("unexpected first clue %+v", clues[0])
	}
	if clues[1].Number != 3 || clues[1].Direction != puzzle.Across {
		t.Fatalf("unexpected second clue %+v", clues[1])
	}
	if v := p.View(); v.WhiteCount != 9 || v.Cells[0][2].Number != 1 || v.Cells[2][0].Number != 3 {
		t.Fatalf("unexpected view: white=%d", v.WhiteCount)
	}
}

func TestSessionResizeDropsClues(t *testing.T) {
	p := plusSession(t)

	if err := p.Resize(7); err != nil {
		t.Fatalf("resize: %v", err)
	}
	v := p.View()
	if v.Size != 7 || v.WhiteCount != 0 || len(v.Clues) != 0 {
		t.Fatalf("expected empty 7x7 grid, got size=%d white=%d clues=%d", v.Size, v.WhiteCount, len(v.Clues))
	}

	if err := p.Resize(maxGridSize + 1); !errors.Is(err, errGridTooLarge) {
		t.Fatalf("expected errGridTooLarge, got %v", err)
	}
}

func TestSessionLock(t *testing.T) {
	p := plusSession(t)
	p.SetLocked(true)

	if _, err := p.Toggle(0, 0); !errors.Is(err, errLocked) {
		t.Fatalf("expected errLocked on toggle, got %v", err)
	}
	if err := p.Resize(3); !errors.Is(err, errLocked) {
		t.Fatalf("expected errLocked on resize, got %v", err)
	}
	if err := p.SetLetter(2, 2, "a"); err != nil {
		t.Fatalf("letters should still be writable when locked: %v", err)
	}

	p.SetLocked(false)
	if _, err := p.Toggle(0, 0); err != nil {
		t.Fatalf("toggle after unlock: %v", err)
	}
}

func TestSessionSetLetter(t *testing.T) {
	p := plusSession(t)

	if err := p.SetLetter(2, 2, "q"); err != nil {
		t.Fatalf("set letter: %v", err)
	}
	if got := p.View().Cells[2][2].Letter; got != "Q" {
		t.Fatalf("expected Q, got %q", got)
	}
	if err := p.SetLetter(2, 2, ""); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if got := p.View().Cells[2][2].Letter; got != "" {
		t.Fatalf("expected erased square, got %q", got)
	}

	if err := p.SetLetter(0, 0, "A"); !errors.Is(err, puzzle.ErrBlackSquare) {
		t.Fatalf("expected ErrBlackSquare, got %v", err)
	}
	if err := p.SetLetter(2, 2, "AB"); !errors.Is(err, puzzle.ErrInvalidLetter) {
		t.Fatalf("expected ErrInvalidLetter, got %v", err)
	}
	if err := p.SetLetter(9, 9, "A"); !errors.Is(err, puzzle.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestSessionFill(t *testing.T) {
	p := plusSession(t)
	m := dictionary.NewMatcher([]string{"CAT", "HOUSE"})

	results, err := p.Fill(m)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if len(results) != 2 || !results[0].Filled() || !results[1].Filled() {
		t.Fatalf("expected both clues filled, got %+v", results)
	}
	if results[1].Pattern != "**U**" {
		t.Fatalf("across pattern should see the down letter, got %q", results[1].Pattern)
	}

	for _, c := range p.Clues() {
		if c.Answer != "HOUSE" {
			t.Fatalf("clue %s: expected answer HOUSE, got %q", c.Label(), c.Answer)
		}
	}

	// Re-extraction on a filled grid no longer sees the word starts.
	p.Renumber()
	if n := len(p.Clues()); n != 0 {
		t.Fatalf("expected filled words to drop out of a renumbered grid, got %d clues", n)
	}
}

func TestSessionFillEmptyCorpus(t *testing.T) {
	p := plusSession(t)

	_, err := p.Fill(dictionary.NewMatcher(nil))
	if !errors.Is(err, dictionary.ErrUninitialized) {
		t.Fatalf("expected ErrUninitialized, got %v", err)
	}
}

func TestSessionSetClueTexts(t *testing.T) {
	p := plusSession(t)

	n := p.SetClueTexts([]ClueText{
		{Number: 1, Direction: puzzle.Down, Text: "Demeure"},
		{Number: 3, Direction: puzzle.Down, Text: "Pas de tel indice"},
	})
	if n != 1 {
		t.Fatalf("expected 1 clue updated, got %d", n)
	}

	clues := p.Clues()
	if clues[0].Text != "Demeure" {
		t.Fatalf("expected text on 1 down, got %q", clues[0].Text)
	}
	if clues[1].Text != puzzle.PlaceholderText {
		t.Fatalf("3 across should keep its placeholder, got %q", clues[1].Text)
	}
}

func TestSessionViewIsCopy(t *testing.T) {
	p := plusSession(t)

	v := p.View()
	v.Cells[2][2].Black = true
	v.Clues[0].Text = "mutated"

	again := p.View()
	if again.Cells[2][2].Black || again.Clues[0].Text == "mutated" {
		t.Fatal("View should return a copy, not a reference")
	}
}
