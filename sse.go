package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	sseChannelBuffer = 16
	sseHeartbeat     = 30 * time.Second
)

// Event is a message pushed to the renderers of one puzzle.
type Event struct {
	Type   string      `json:"type"`
	Puzzle *PuzzleView `json:"puzzle,omitempty"`
	Filled int         `json:"filled,omitempty"`
	Missed int         `json:"missed,omitempty"`
}

// subscriber is a single SSE connection.
type subscriber struct {
	ch       chan []byte
	puzzleID string
}

// Broadcaster fans puzzle events out to SSE subscribers.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[*subscriber]struct{}),
	}
}

// Subscribe registers a subscriber for a puzzle.
func (b *Broadcaster) Subscribe(puzzleID string) *subscriber {
	s := &subscriber{
		ch:       make(chan []byte, sseChannelBuffer),
		puzzleID: puzzleID,
	}
	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s
}

// Unsubscribe removes a subscriber and closes its channel. It is safe to
// call more than once.
func (b *Broadcaster) Unsubscribe(s *subscriber) {
	b.mu.Lock()
	if _, ok := b.subs[s]; ok {
		delete(b.subs, s)
		close(s.ch)
	}
	b.mu.Unlock()
}

// Publish encodes evt once and queues it for every subscriber of the puzzle.
// Subscribers whose buffer is full miss the event.
func (b *Broadcaster) Publish(puzzleID string, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("SSE encode %s: %v", evt.Type, err)
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subs {
		if s.puzzleID != puzzleID {
			continue
		}
		select {
		case s.ch <- data:
		default:
		}
	}
}

// SubscriberCount returns the number of open streams for a puzzle.
func (b *Broadcaster) SubscriberCount(puzzleID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for s := range b.subs {
		if s.puzzleID == puzzleID {
			n++
		}
	}
	return n
}

// ServeSSE streams a puzzle's events until the client goes away. The first
// event is the initial snapshot.
func (b *Broadcaster) ServeSSE(w http.ResponseWriter, r *http.Request, puzzleID string, initial Event) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming non supporté", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s := b.Subscribe(puzzleID)
	defer b.Unsubscribe(s)

	if data, err := json.Marshal(initial); err == nil {
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}

	ticker := time.NewTicker(sseHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-s.ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}
