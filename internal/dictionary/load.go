package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// MinUsefulWords is the corpus size below which callers should treat a word
// list as not usefully loaded. Match does not enforce it.
const MinUsefulWords = 1000

// Source supplies a word list.
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// ReadWords reads a newline-delimited word list from r. Blank lines and
// entries containing anything but ASCII letters are dropped; the rest are
// upper-cased.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	words := make([]string, 0, 1<<14)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !isASCIIWord(line) {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return words, nil
}

func isASCIIWord(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// FileSource reads a word list from a local file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(_ context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

// HTTPSource fetches a word list with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Load implements Source.
func (s HTTPSource) Load(ctx context.Context) ([]string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, s.URL, resp.Status)
	}
	return ReadWords(resp.Body)
}
