package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/sse"
	"github.com/Zachkp/portfolio/internal/view"
)

func newServer(t *testing.T, opts Options, logger *zap.Logger) *Server {
	t.Helper()
	renderer, err := page.New(view.DefaultOptions(), nil)
	require.NoError(t, err)
	opts.Mode = gin.TestMode
	s, err := New(content.Default(), renderer, opts, logger)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	media := content.NewMediaFS(fstest.MapFS{"project1.png": {Data: []byte("png")}})
	s := newServer(t, Options{Media: media}, nil)

	w := get(t, s, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Charan S Naik")
	assert.Contains(t, body, `src="/media/project1.png"`)
	assert.Contains(t, body, "Add project2.jpg")
	assert.NotContains(t, body, `"events"`, "live reload is off without a broker")
}

func TestContactForm(t *testing.T) {
	s := newServer(t, Options{}, nil)
	w := get(t, s, "/contact-form", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact Me")
	assert.Contains(t, w.Body.String(), "mailto:charan07naik@gmail.com")

	// There is no delivery transport behind the form.
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("fullName=x"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssetsAndMedia(t *testing.T) {
	media := content.NewMediaFS(fstest.MapFS{"profile.png": {Data: []byte("png")}})
	s := newServer(t, Options{Media: media}, nil)

	w := get(t, s, "/assets/effects.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IntersectionObserver")

	assert.Equal(t, http.StatusOK, get(t, s, "/media/profile.png", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/media/missing.png", nil).Code)
}

func TestResume(t *testing.T) {
	media := content.NewMediaFS(fstest.MapFS{"resume.pdf": {Data: []byte("%PDF-1.4")}})
	s := newServer(t, Options{Media: media}, nil)

	body := get(t, s, "/", nil).Body.String()
	assert.Contains(t, body, `href="/media/resume.pdf"`)
	assert.Contains(t, body, "Download Resume")

	w := get(t, s, "/media/resume.pdf", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestResume_MissingShowsPlaceholder(t *testing.T) {
	s := newServer(t, Options{}, nil)
	body := get(t, s, "/", nil).Body.String()
	assert.NotContains(t, body, "Download Resume")
	assert.Contains(t, body, "Add resume.pdf")
}

func TestHealthz(t *testing.T) {
	s := newServer(t, Options{}, nil)
	w := get(t, s, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 0, body["gaps"])
}

func TestSwap_PublishesAndServesNewStore(t *testing.T) {
	broker := sse.NewBroker(0, nil)
	defer broker.Close()
	s := newServer(t, Options{Broker: broker}, nil)

	assert.Contains(t, get(t, s, "/", nil).Body.String(), `"events":"/events"`)

	ch, cancel := broker.Subscribe()
	defer cancel()

	next := content.Default()
	next.Personal.Name = "Grace Hopper"
	next.Source = "content.yaml"
	s.Swap(next)

	select {
	case msg := <-ch:
		assert.Contains(t, string(msg), "event: content.updated")
		assert.Contains(t, string(msg), `"source":"content.yaml"`)
	case <-time.After(time.Second):
		t.Fatal("no reload event")
	}
	assert.Contains(t, get(t, s, "/", nil).Body.String(), "Grace Hopper")
	assert.Same(t, next, s.Store())
}

func TestAccessLog_HashesAndSkips(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newServer(t, Options{}, zap.New(core))

	get(t, s, "/", map[string]string{"User-Agent": "test-agent"})
	get(t, s, "/assets/style.css", nil)
	get(t, s, "/healthz", nil)
	get(t, s, "/contact-form", map[string]string{"DNT": "1"})

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "/", first["path"])
	assert.EqualValues(t, http.StatusOK, first["status"])
	assert.Equal(t, "test-agent", first["user_agent"])
	visitor, _ := first["visitor"].(string)
	assert.Len(t, visitor, 16)
	assert.NotContains(t, visitor, "192.0.2.1")

	second := entries[1].ContextMap()
	assert.Equal(t, "/contact-form", second["path"])
	assert.NotContains(t, second, "visitor")
	assert.NotContains(t, second, "user_agent")
}

func TestHashIP_Stable(t *testing.T) {
	assert.Equal(t, hashIP("10.0.0.1", "salt"), hashIP("10.0.0.1", "salt"))
	assert.NotEqual(t, hashIP("10.0.0.1", "salt"), hashIP("10.0.0.2", "salt"))
	assert.NotEqual(t, hashIP("10.0.0.1", "salt"), hashIP("10.0.0.1", "pepper"))
}

func TestRun_GracefulShutdown(t *testing.T) {
	s := newServer(t, Options{}, nil)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr, time.Second) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
