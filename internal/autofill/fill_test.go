package autofill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodul/xwordsetter/internal/dictionary"
	"github.com/bodul/xwordsetter/internal/puzzle"
)

// recordingMatcher returns canned answers and records the patterns asked.
type recordingMatcher struct {
	answers  map[string][]string
	patterns []string
	err      error
}

func (m *recordingMatcher) Match(pattern string) ([]string, error) {
	m.patterns = append(m.patterns, pattern)
	if m.err != nil {
		return nil, m.err
	}
	return m.answers[pattern], nil
}

func TestFillIsolatedClue(t *testing.T) {
	g, err := puzzle.Parse([]string{
		"#####",
		"#####",
		".....",
		"#####",
		"#####",
	})
	require.NoError(t, err)
	clues := g.ExtractClues()
	require.Len(t, clues, 1)

	before := g.Snapshot()
	m := dictionary.NewMatcher([]string{"CAT", "HOUSE", "DOG"})

	results, err := Fill(g, clues, m)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Filled())
	assert.Equal(t, "HOUSE", results[0].Word)
	assert.Equal(t, "*****", results[0].Pattern)
	assert.Len(t, results[0].Changed, 5)

	after := g.Snapshot()
	for r := range after {
		for c := range after[r] {
			if r == 2 {
				assert.Equal(t, "HOUSE"[c], after[r][c].Char)
				continue
			}
			assert.Equal(t, before[r][c], after[r][c], "square (%d,%d)", r, c)
		}
	}
}

func TestFillUsesExistingLetters(t *testing.T) {
	g, err := puzzle.Parse([]string{
		"c.t",
		"###",
		"###",
	})
	require.NoError(t, err)
	clues := g.ExtractClues()
	require.Len(t, clues, 1)

	m := &recordingMatcher{answers: map[string][]string{"C*T": {"COT", "CAT"}}}
	results, err := Fill(g, clues, m)
	require.NoError(t, err)

	assert.Equal(t, []string{"C*T"}, m.patterns)
	assert.Equal(t, "COT", results[0].Word)
	assert.Equal(t, 2, results[0].Candidates)
	assert.Equal(t, []puzzle.Position{{Row: 0, Column: 1}}, results[0].Changed)
	assert.Equal(t, "COT\n###\n###\n", g.String())
}

func TestFillNoMatchContinues(t *testing.T) {
	g, err := puzzle.Parse([]string{
		"....",
		"####",
		"####",
		"...#",
	})
	require.NoError(t, err)
	clues := g.ExtractClues()
	require.Len(t, clues, 2)

	m := &recordingMatcher{answers: map[string][]string{"***": {"ZAP"}}}
	results, err := Fill(g, clues, m)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Filled())
	assert.True(t, results[1].Filled())
	filled, unfilled := Count(results)
	assert.Equal(t, 1, filled)
	assert.Equal(t, 1, unfilled)
	assert.Equal(t, "....\n####\n####\nZAP#\n", g.String())
}

func TestFillLaterClueOverwritesCrossing(t *testing.T) {
	g, err := puzzle.Parse([]string{
		"...",
		".#.",
		"...",
	})
	require.NoError(t, err)
	clues := g.ExtractClues()
	// 1 down and 1 across share (0,0).
	require.Equal(t, puzzle.Down, clues[0].Direction)
	require.Equal(t, puzzle.Across, clues[1].Direction)

	m := &recordingMatcher{answers: map[string][]string{
		"***": {"ABC"},
		"A**": {"XYZ"},
	}}
	results, err := Fill(g, clues, m)
	require.NoError(t, err)

	assert.Equal(t, "ABC", results[0].Word)
	// The across pattern sees the down word's letter, then replaces it.
	assert.Equal(t, "A**", results[1].Pattern)
	assert.Equal(t, "XYZ", results[1].Word)
	assert.Equal(t, byte('X'), g.At(0, 0).Char)
	assert.Equal(t, byte('B'), g.At(1, 0).Char)
}

func TestFillMatcherError(t *testing.T) {
	g, err := puzzle.Parse([]string{
		"...",
		"###",
		"...",
	})
	require.NoError(t, err)
	clues := g.ExtractClues()

	results, err := Fill(g, clues, dictionary.NewMatcher(nil))
	assert.ErrorIs(t, err, dictionary.ErrUninitialized)
	assert.Empty(t, results)
	assert.Equal(t, "...\n###\n...\n", g.String())

	boom := errors.New("boom")
	_, err = Fill(g, clues, &recordingMatcher{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestFillStaleClues(t *testing.T) {
	g, err := puzzle.Parse([]string{
		"...",
		"###",
		"...",
	})
	require.NoError(t, err)
	clues := g.ExtractClues()
	_, err = g.Toggle(0, 1)
	require.NoError(t, err)

	_, err = Fill(g, clues, &recordingMatcher{})
	assert.ErrorIs(t, err, puzzle.ErrBlackSquare)
}
