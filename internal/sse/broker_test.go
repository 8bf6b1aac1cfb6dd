package sse

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func (b *Broker) streamCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.streams)
}

func TestSubscribeCancel(t *testing.T) {
	b := NewBroker(0, nil)
	defer b.Close()

	ch, cancel := b.Subscribe()
	assert.Equal(t, 1, b.streamCount())
	cancel()
	cancel()
	assert.Zero(t, b.streamCount())

	_, open := <-ch
	assert.False(t, open, "cancel closes the channel")
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker(0, nil)
	defer b.Close()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(Event{Type: ContentUpdated, Data: map[string]string{"source": "content.yaml"}})

	select {
	case msg := <-ch:
		s := string(msg)
		assert.Contains(t, s, "event: content.updated\n")
		assert.Contains(t, s, `data: {"source":"content.yaml"}`)
		assert.True(t, strings.HasSuffix(s, "\n\n"))
	default:
		t.Fatal("publish did not reach the stream")
	}
}

func TestPublish_FullBufferSkips(t *testing.T) {
	b := NewBroker(0, nil)
	defer b.Close()
	ch, cancel := b.Subscribe()
	defer cancel()

	for range cap(ch) + 5 {
		b.Publish(Event{Type: ContentUpdated})
	}
	assert.Len(t, ch, cap(ch))
}

func TestPublish_Unencodable(t *testing.T) {
	b := NewBroker(0, nil)
	defer b.Close()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(Event{Type: ContentUpdated, Data: func() {}})
	assert.Empty(t, ch)
}

func TestClose_ClosesStreamsAndIsIdempotent(t *testing.T) {
	b := NewBroker(0, nil)
	ch, cancel := b.Subscribe()
	b.Close()
	b.Close()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, b.streamCount())

	late, _ := b.Subscribe()
	_, open = <-late
	assert.False(t, open, "subscribing after close yields a closed channel")
	b.Publish(Event{Type: ContentUpdated})
}

// streamRecorder is a ResponseWriter safe to read while ServeHTTP writes.
type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	code   int
	buf    bytes.Buffer
}

func (r *streamRecorder) Header() http.Header { return r.header }
func (r *streamRecorder) WriteHeader(code int) {
	r.mu.Lock()
	r.code = code
	r.mu.Unlock()
}
func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}
func (r *streamRecorder) Flush() {}
func (r *streamRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

func TestServeHTTP_StreamsEvents(t *testing.T) {
	b := NewBroker(20*time.Millisecond, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := &streamRecorder{header: http.Header{}}

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return strings.HasPrefix(rec.String(), "retry: 1000\n\n") }, time.Second, 5*time.Millisecond)
	b.Publish(Event{Type: ContentUpdated, Data: map[string]int{"gaps": 0}})

	require.Eventually(t, func() bool {
		s := rec.String()
		return strings.Contains(s, "event: content.updated") && strings.Contains(s, ": ping")
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after cancel")
	}
	assert.Zero(t, b.streamCount())
}

func TestServeHTTP_EndsWhenBrokerCloses(t *testing.T) {
	b := NewBroker(0, nil)
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := &streamRecorder{header: http.Header{}}

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(rec, req)
		close(done)
	}()
	require.Eventually(t, func() bool { return b.streamCount() == 1 }, time.Second, 5*time.Millisecond)

	b.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after broker close")
	}
}
