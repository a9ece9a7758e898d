package main

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bodul/xwordsetter/internal/autofill"
	"github.com/bodul/xwordsetter/internal/dictionary"
	"github.com/bodul/xwordsetter/internal/puzzle"
)

//go:embed frontend
var frontendFS embed.FS

const maxBodySize = 64 << 10

// Server is the main HTTP server.
type Server struct {
	mux         *http.ServeMux
	store       *Store
	corpus      *Corpus
	writer      ClueWriter
	sse         *Broadcaster
	fillRL      *rateLimiter
	writeRL     *rateLimiter
	defaultSize int
}

// NewServer creates a configured HTTP server. A nil writer disables clue
// writing.
func NewServer(store *Store, corpus *Corpus, writer ClueWriter) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		store:       store,
		corpus:      corpus,
		writer:      writer,
		sse:         NewBroadcaster(),
		fillRL:      newRateLimiter(30, time.Second), // 30 fills/sec per IP
		writeRL:     newRateLimiter(5, time.Minute),  // 5 Gemini calls/min per IP
		defaultSize: puzzle.DefaultSize,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Puzzle API
	s.mux.HandleFunc("POST /api/puzzles", s.handleCreatePuzzle)
	s.mux.HandleFunc("GET /api/puzzles", s.handleListPuzzles)
	s.mux.HandleFunc("GET /api/puzzles/{id}", s.handleGetPuzzle)
	s.mux.HandleFunc("DELETE /api/puzzles/{id}", s.handleDeletePuzzle)
	s.mux.HandleFunc("POST /api/puzzles/{id}/toggle", s.handleToggle)
	s.mux.HandleFunc("POST /api/puzzles/{id}/resize", s.handleResize)
	s.mux.HandleFunc("POST /api/puzzles/{id}/renumber", s.handleRenumber)
	s.mux.HandleFunc("POST /api/puzzles/{id}/letter", s.handleLetter)
	s.mux.HandleFunc("POST /api/puzzles/{id}/lock", s.handleLock)
	s.mux.HandleFunc("POST /api/puzzles/{id}/fill", s.handleFill)
	s.mux.HandleFunc("POST /api/puzzles/{id}/clues/write", s.handleWriteClues)
	s.mux.HandleFunc("GET /api/puzzles/{id}/events", s.handlePuzzleEvents)

	// Dictionary API
	s.mux.HandleFunc("GET /api/match", s.handleMatch)

	// Frontend static files
	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	fileServer := http.FileServer(http.FS(frontendDir))
	s.mux.HandleFunc("GET /puzzle/{id}", s.handlePuzzlePage)
	s.mux.Handle("GET /", fileServer)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// --- Puzzle handlers ---

// POST /api/puzzles — start a new all-black grid.
func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size int `json:"size"`
	}
	if r.ContentLength != 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}
	if req.Size == 0 {
		req.Size = s.defaultSize
	}

	p, err := s.store.CreatePuzzle(req.Size)
	if err != nil {
		jsonError(w, "Taille de grille invalide", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, p.View())
}

// GET /api/puzzles — list all puzzles.
func (s *Server) handleListPuzzles(w http.ResponseWriter, _ *http.Request) {
	list := s.store.ListPuzzles()
	out := make([]PuzzleSummary, len(list))
	for i, p := range list {
		out[i] = p.Summary()
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/puzzles/{id} — get a single puzzle.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}
	writeJSON(w, http.StatusOK, p.View())
}

// DELETE /api/puzzles/{id} — drop a puzzle.
func (s *Server) handleDeletePuzzle(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeletePuzzle(r.PathValue("id")) {
		jsonError(w, "Grille introuvable", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/puzzles/{id}/toggle — flip a square and its rotations.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	var req struct {
		Row int `json:"row"`
		Col int `json:"col"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := p.Toggle(req.Row, req.Col); err != nil {
		puzzleError(w, err)
		return
	}
	s.publishUpdate(w, p)
}

// POST /api/puzzles/{id}/resize — reset the grid at a new size.
func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	var req struct {
		Size int `json:"size"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := p.Resize(req.Size); err != nil {
		puzzleError(w, err)
		return
	}
	s.publishUpdate(w, p)
}

// POST /api/puzzles/{id}/renumber — rebuild the clue list.
func (s *Server) handleRenumber(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}
	p.Renumber()
	s.publishUpdate(w, p)
}

// POST /api/puzzles/{id}/letter — write or erase a letter.
func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	var req struct {
		Row   int    `json:"row"`
		Col   int    `json:"col"`
		Value string `json:"value"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := p.SetLetter(req.Row, req.Col, req.Value); err != nil {
		puzzleError(w, err)
		return
	}
	s.publishUpdate(w, p)
}

// POST /api/puzzles/{id}/lock — freeze or unfreeze the pattern.
func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	var req struct {
		Locked bool `json:"locked"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	p.SetLocked(req.Locked)
	s.publishUpdate(w, p)
}

// POST /api/puzzles/{id}/fill — one best-effort auto-fill pass.
func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	if !s.fillRL.allow(clientIP(r.RemoteAddr)) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	m := s.corpus.Matcher()
	if m == nil {
		jsonError(w, "Dictionnaire en cours de chargement", http.StatusServiceUnavailable)
		return
	}

	results, err := p.Fill(m)
	if err != nil {
		log.Printf("Auto-fill %s: %v", p.ID, err)
		puzzleError(w, err)
		return
	}

	filled, missed := autofill.Count(results)
	view := p.View()
	s.sse.Publish(p.ID, Event{Type: "grid_update", Puzzle: &view, Filled: filled, Missed: missed})

	writeJSON(w, http.StatusOK, struct {
		Results []autofill.Result `json:"results"`
		Filled  int               `json:"filled"`
		Missed  int               `json:"missed"`
		Puzzle  PuzzleView        `json:"puzzle"`
	}{results, filled, missed, view})
}

// POST /api/puzzles/{id}/clues/write — ask Gemini for clue prose.
func (s *Server) handleWriteClues(w http.ResponseWriter, r *http.Request) {
	if !s.writeRL.allow(clientIP(r.RemoteAddr)) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	if s.writer == nil {
		jsonError(w, "Rédaction des définitions non configurée", http.StatusServiceUnavailable)
		return
	}

	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	texts, err := s.writer.WriteClues(r.Context(), p.Clues())
	if err != nil {
		log.Printf("Gemini write clues error: %v", err)
		jsonError(w, "Erreur lors de la rédaction des définitions", http.StatusBadGateway)
		return
	}

	p.SetClueTexts(texts)
	s.publishUpdate(w, p)
}

// GET /api/puzzles/{id}/events — SSE stream.
func (s *Server) handlePuzzleEvents(w http.ResponseWriter, r *http.Request) {
	p := s.puzzle(w, r)
	if p == nil {
		return
	}

	view := p.View()
	s.sse.ServeSSE(w, r, p.ID, Event{Type: "puzzle_state", Puzzle: &view})
}

// --- Dictionary handlers ---

// GET /api/match?pattern=C*T — words fitting a wildcard pattern.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	m := s.corpus.Matcher()
	if m == nil {
		jsonError(w, "Dictionnaire en cours de chargement", http.StatusServiceUnavailable)
		return
	}

	pattern := strings.TrimSpace(r.URL.Query().Get("pattern"))
	if !validPattern(pattern) {
		jsonError(w, "Motif invalide : lettres A-Z et *", http.StatusBadRequest)
		return
	}

	words, err := m.Match(pattern)
	if err != nil {
		jsonError(w, "Dictionnaire vide", http.StatusServiceUnavailable)
		return
	}
	if words == nil {
		words = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pattern": strings.ToUpper(pattern),
		"words":   words,
	})
}

// --- Frontend page handlers ---

// GET /puzzle/{id} — serve the construction page.
func (s *Server) handlePuzzlePage(w http.ResponseWriter, _ *http.Request) {
	data, _ := frontendFS.ReadFile("frontend/puzzle.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// --- Helpers ---

func (s *Server) puzzle(w http.ResponseWriter, r *http.Request) *Session {
	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "Grille introuvable", http.StatusNotFound)
	}
	return p
}

// publishUpdate pushes the new snapshot to subscribers and writes it back.
func (s *Server) publishUpdate(w http.ResponseWriter, p *Session) {
	view := p.View()
	s.sse.Publish(p.ID, Event{Type: "grid_update", Puzzle: &view})
	writeJSON(w, http.StatusOK, view)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		jsonError(w, "Requête invalide", http.StatusBadRequest)
		return false
	}
	return true
}

// puzzleError maps engine errors to HTTP responses.
func puzzleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errLocked):
		jsonError(w, "Grille verrouillée", http.StatusConflict)
	case errors.Is(err, puzzle.ErrOutOfBounds):
		jsonError(w, "Position hors limites", http.StatusBadRequest)
	case errors.Is(err, puzzle.ErrInvalidSize), errors.Is(err, errGridTooLarge):
		jsonError(w, "Taille de grille invalide", http.StatusBadRequest)
	case errors.Is(err, puzzle.ErrBlackSquare):
		jsonError(w, "Case noire", http.StatusBadRequest)
	case errors.Is(err, puzzle.ErrInvalidLetter):
		jsonError(w, "Valeur invalide : une lettre A-Z ou vide", http.StatusBadRequest)
	case errors.Is(err, dictionary.ErrUninitialized):
		jsonError(w, "Dictionnaire vide", http.StatusServiceUnavailable)
	default:
		jsonError(w, "Erreur interne", http.StatusInternalServerError)
	}
}

func validPattern(p string) bool {
	if p == "" || len(p) > maxGridSize {
		return false
	}
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != dictionary.Wildcard && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
