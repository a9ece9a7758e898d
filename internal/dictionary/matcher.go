package dictionary

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// Wildcard matches any single letter in a pattern.
	Wildcard = '*'

	// MaxMatches caps the number of words returned by Match.
	MaxMatches = 11
)

// Pattern is a compiled wildcard pattern. Matching is anchored at both ends
// and ignores case.
type Pattern struct {
	chars []byte
}

// Compile upper-cases pattern and keeps it for matching.
func Compile(pattern string) Pattern {
	chars := make([]byte, len(pattern))
	for i := 0; i < len(pattern); i++ {
		chars[i] = upper(pattern[i])
	}
	return Pattern{chars: chars}
}

// Len returns the number of positions in the pattern.
func (p Pattern) Len() int {
	return len(p.chars)
}

// Matches reports whether word has the pattern's length, carries its letters
// at the fixed positions and a letter at every wildcard.
func (p Pattern) Matches(word string) bool {
	if len(word) != len(p.chars) {
		return false
	}
	for i, want := range p.chars {
		got := upper(word[i])
		if want == Wildcard {
			if got < 'A' || got > 'Z' {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	return string(p.chars)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Matcher searches a fixed corpus for words fitting a pattern. It is safe
// for concurrent use.
type Matcher struct {
	words []string
	limit int

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRand sets the source of the random scan offset.
func WithRand(r *rand.Rand) Option {
	return func(m *Matcher) {
		m.rng = r
	}
}

// WithSeed seeds the random scan offset, for reproducible results.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLimit overrides MaxMatches.
func WithLimit(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.limit = n
		}
	}
}

// NewMatcher returns a Matcher over a copy of words.
func NewMatcher(words []string, opts ...Option) *Matcher {
	m := &Matcher{
		words: append([]string(nil), words...),
		limit: MaxMatches,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		now := uint64(time.Now().UnixNano())
		m.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return m
}

// Len returns the number of words in the corpus.
func (m *Matcher) Len() int {
	return len(m.words)
}

// Match returns up to the match limit of corpus words fitting pattern, in
// the order found. The scan starts at a random offset and wraps around the
// corpus once, so repeated calls can return different words.
//
// It fails with ErrUninitialized on an empty corpus, whatever the pattern,
// and returns no words for an empty pattern.
func (m *Matcher) Match(pattern string) ([]string, error) {
	if len(m.words) == 0 {
		return nil, ErrUninitialized
	}
	if pattern == "" {
		return nil, nil
	}

	p := Compile(pattern)
	n := len(m.words)
	start := m.offset(n)

	var out []string
	for i := 0; i < n; i++ {
		w := m.words[(start+i)%n]
		if !p.Matches(w) {
			continue
		}
		out = append(out, w)
		if len(out) >= m.limit {
			break
		}
	}
	return out, nil
}

func (m *Matcher) offset(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.IntN(n)
}
