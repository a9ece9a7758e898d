package dictionary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchWildcard(t *testing.T) {
	m := NewMatcher([]string{"CAT", "COT", "DOG", "CUT"})

	for i := 0; i < 20; i++ {
		got, err := m.Match("C*T")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"CAT", "COT", "CUT"}, got)
	}
}

func TestMatchIgnoresCase(t *testing.T) {
	m := NewMatcher([]string{"Fitted", "fished", "FISHES", "fit"})

	got, err := m.Match("fi**ED")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Fitted", "fished"}, got)
}

func TestMatchAnchored(t *testing.T) {
	m := NewMatcher([]string{"CATS", "SCAT", "CAT"})

	got, err := m.Match("CAT")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT"}, got)

	got, err = m.Match("***")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT"}, got)
}

func TestMatchBounded(t *testing.T) {
	words := make([]string, 0, 26*26)
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			words = append(words, fmt.Sprintf("Q%c%c", a, b))
		}
	}
	m := NewMatcher(words)

	for i := 0; i < 10; i++ {
		got, err := m.Match("Q**")
		require.NoError(t, err)
		require.Len(t, got, MaxMatches)
	}

	got, err := m.Match("QZ*")
	require.NoError(t, err)
	assert.Len(t, got, MaxMatches)

	got, err = m.Match("QZZ")
	require.NoError(t, err)
	assert.Equal(t, []string{"QZZ"}, got)

	got, err = m.Match("XZZ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchWithLimit(t *testing.T) {
	m := NewMatcher([]string{"AA", "AB", "AC", "AD"}, WithLimit(2))

	got, err := m.Match("A*")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMatchEmptyPattern(t *testing.T) {
	m := NewMatcher([]string{"CAT"})

	got, err := m.Match("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchUninitialized(t *testing.T) {
	m := NewMatcher(nil)

	for _, p := range []string{"", "C*T", "***"} {
		_, err := m.Match(p)
		assert.ErrorIs(t, err, ErrUninitialized, "pattern %q", p)
	}
}

func TestMatchSeeded(t *testing.T) {
	words := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		words = append(words, fmt.Sprintf("W%c%c", 'A'+i/26, 'A'+i%26))
	}

	a := NewMatcher(words, WithSeed(42))
	b := NewMatcher(words, WithSeed(42))
	for i := 0; i < 5; i++ {
		ga, err := a.Match("W**")
		require.NoError(t, err)
		gb, err := b.Match("W**")
		require.NoError(t, err)
		assert.Equal(t, ga, gb)
	}
}

func TestMatchRandomOffsetVaries(t *testing.T) {
	words := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		words = append(words, fmt.Sprintf("V%c%c", 'A'+i/26, 'A'+i%26))
	}
	m := NewMatcher(words, WithSeed(7))

	firsts := make(map[string]bool)
	for i := 0; i < 50; i++ {
		got, err := m.Match("V**")
		require.NoError(t, err)
		require.NotEmpty(t, got)
		firsts[got[0]] = true
	}
	assert.Greater(t, len(firsts), 1)
}

func TestNewMatcherCopiesWords(t *testing.T) {
	words := []string{"CAT"}
	m := NewMatcher(words)
	words[0] = "DOG"

	got, err := m.Match("C*T")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT"}, got)
	assert.Equal(t, 1, m.Len())
}

func TestCompile(t *testing.T) {
	p := Compile("c*t")
	assert.Equal(t, "C*T", p.String())
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Matches("cat"))
	assert.False(t, p.Matches("ca"))
	assert.False(t, p.Matches("c-t"))
}
