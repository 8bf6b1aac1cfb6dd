// Package sse pushes live reload notifications to open pages over
// Server-Sent Events.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ContentUpdated is published after the Content Store is reloaded.
const ContentUpdated = "content.updated"

// retryMs is the reconnect delay sent to each page when its stream opens.
const retryMs = 1000

// Event is one notification for open pages.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Encode renders e in wire format.
func Encode(e Event) ([]byte, error) {
	payload, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", e.Type, payload)), nil
}

// Broker fans reload events out to the pages streaming from it.
type Broker struct {
	heartbeat time.Duration
	logger    *zap.Logger

	mu      sync.Mutex
	streams map[chan []byte]struct{}
	closed  bool
}

// NewBroker returns a broker. Idle streams receive a comment line every
// heartbeat so proxies keep them open; zero disables it.
func NewBroker(heartbeat time.Duration, logger *zap.Logger) *Broker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broker{
		heartbeat: heartbeat,
		logger:    logger,
		streams:   make(map[chan []byte]struct{}),
	}
}

// Subscribe registers a stream and returns it with the function that
// removes it. The channel is closed on cancel or when the broker closes.
func (b *Broker) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 16)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.streams[ch] = struct{}{}

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.streams[ch]; ok {
			delete(b.streams, ch)
			close(ch)
		}
	}
}

// Publish hands e to every open stream. A page whose buffer is full misses
// the event; the next reload event reaches it again.
func (b *Broker) Publish(e Event) {
	raw, err := Encode(e)
	if err != nil {
		b.logger.Warn("dropping unencodable event", zap.String("type", e.Type), zap.Error(err))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.streams {
		select {
		case ch <- raw:
		default:
			b.logger.Debug("stream buffer full, event skipped", zap.String("type", e.Type))
		}
	}
	b.logger.Debug("event published", zap.String("type", e.Type), zap.Int("streams", len(b.streams)))
}

// Close ends every stream. It is safe to call more than once.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.streams {
		close(ch)
	}
	clear(b.streams)
}

// ServeHTTP streams events until the page goes away or the broker closes.
// The stream opens with a retry hint once the page is subscribed.
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch, cancel := b.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "retry: %d\n\n", retryMs)
	flusher.Flush()

	var beat <-chan time.Time
	if b.heartbeat > 0 {
		t := time.NewTicker(b.heartbeat)
		defer t.Stop()
		beat = t.C
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-beat:
			_, _ = w.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}
