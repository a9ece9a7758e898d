package main

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/bodul/xwordsetter/internal/dictionary"
)

// Corpus holds the word matcher once the word list has loaded. Until then
// pattern matching is unavailable.
type Corpus struct {
	matcher atomic.Pointer[dictionary.Matcher]
}

// Matcher returns the loaded matcher, or nil while loading.
func (c *Corpus) Matcher() *dictionary.Matcher {
	return c.matcher.Load()
}

// Ready reports whether the word list has loaded.
func (c *Corpus) Ready() bool {
	return c.matcher.Load() != nil
}

// Set installs a matcher over words.
func (c *Corpus) Set(words []string, opts ...dictionary.Option) {
	c.matcher.Store(dictionary.NewMatcher(words, opts...))
}

// Load reads the word list from src and installs it. Loading is all or
// nothing: on error the corpus stays unavailable.
func (c *Corpus) Load(ctx context.Context, src dictionary.Source) error {
	words, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("load corpus: %w", dictionary.ErrUninitialized)
	}
	if len(words) < dictionary.MinUsefulWords {
		log.Printf("Dictionnaire trop petit (%d mots) — les remplissages seront pauvres", len(words))
	}
	c.Set(words)
	return nil
}
