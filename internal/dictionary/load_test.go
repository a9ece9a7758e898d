package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = "apple\r\n\n  Banana \ncafé\nco-op\nDOG\nx2\n"

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader(sampleList))
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "BANANA", "DOG"}, words)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o644))

	words, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "BANANA", "DOG"}, words)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}.Load(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dictionaries/en.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleList))
	}))
	defer srv.Close()

	words, err := HTTPSource{URL: srv.URL + "/dictionaries/en.txt"}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "BANANA", "DOG"}, words)

	_, err = HTTPSource{URL: srv.URL + "/missing.txt", Client: srv.Client()}.Load(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
}

func TestHTTPSourceCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleList))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HTTPSource{URL: srv.URL}.Load(ctx)
	assert.ErrorIs(t, err, ErrFetch)
}
