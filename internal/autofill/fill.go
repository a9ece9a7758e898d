// Package autofill writes dictionary words into a grid's clue slots, one
// clue at a time.
package autofill

import (
	"fmt"

	"github.com/bodul/xwordsetter/internal/puzzle"
)

// Matcher finds corpus words fitting a wildcard pattern.
type Matcher interface {
	Match(pattern string) ([]string, error)
}

// Result is the outcome of filling one clue.
type Result struct {
	Clue    puzzle.Clue `json:"clue"`
	Pattern string      `json:"pattern"`
	// Word is the word written along the clue, empty when nothing matched.
	Word string `json:"word,omitempty"`
	// Candidates is the number of words the matcher proposed.
	Candidates int               `json:"candidates"`
	Changed    []puzzle.Position `json:"changed,omitempty"`
}

// Filled reports whether a word was written for the clue.
func (r Result) Filled() bool {
	return r.Word != ""
}

// Fill visits clues in order, reads each one's current letters as a pattern
// and writes the first word m proposes over the whole path. Clues are filled
// independently: a later clue may overwrite letters an earlier crossing clue
// placed, and nothing is undone. A clue with no match is left as it is and
// reported unfilled.
//
// Matcher errors stop the pass; the grid keeps the words already written and
// the results gathered so far are returned with the error.
func Fill(g *puzzle.Grid, clues []puzzle.Clue, m Matcher) ([]Result, error) {
	results := make([]Result, 0, len(clues))

	for _, c := range clues {
		pattern, err := g.Pattern(c)
		if err != nil {
			return results, err
		}

		words, err := m.Match(pattern)
		if err != nil {
			return results, fmt.Errorf("match %s %q: %w", c.Label(), pattern, err)
		}

		res := Result{Clue: c, Pattern: pattern, Candidates: len(words)}
		if len(words) > 0 {
			changed, err := g.Place(c, words[0])
			if err != nil {
				return results, err
			}
			res.Word = words[0]
			res.Changed = changed
		}
		results = append(results, res)
	}
	return results, nil
}

// Count returns how many results were filled and how many were not.
func Count(results []Result) (filled, unfilled int) {
	for _, r := range results {
		if r.Filled() {
			filled++
		} else {
			unfilled++
		}
	}
	return filled, unfilled
}
