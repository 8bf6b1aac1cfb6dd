// Package server serves the portfolio page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/sse"
)

// EventsPath is the live reload stream.
const EventsPath = "/events"

// Options configures a Server.
type Options struct {
	// Mode is the gin mode: debug, release or test.
	Mode  string
	Media content.Media
	// Broker enables live reload when set.
	Broker *sse.Broker
}

// Server renders the current Content Store on every request. The store is
// swapped atomically on reload; requests in flight keep the snapshot they
// started with.
type Server struct {
	store    atomic.Pointer[content.Store]
	renderer *page.Renderer
	media    content.Media
	broker   *sse.Broker
	logger   *zap.Logger
	router   *gin.Engine
}

// New builds the router.
func New(store *content.Store, renderer *page.Renderer, opts Options, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	s := &Server{
		renderer: renderer,
		media:    opts.Media,
		broker:   opts.Broker,
		logger:   logger,
	}
	s.store.Store(store)

	r := gin.New()
	r.Use(gin.Recovery(), accessLog(logger, salt))
	r.SetHTMLTemplate(renderer.Template())

	r.StaticFS("/"+page.AssetsPrefix, http.FS(page.Static()))
	if fsys := opts.Media.FS(); fsys != nil {
		r.StaticFS("/"+content.MediaPrefix, http.FS(fsys))
	}

	// Home page route
	r.GET("/", s.index)

	// Contact form fragment; the form is capture-only and has no submit route.
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, page.ContactTemplate, page.ContactForm{
			Title: "Contact Me",
			Email: s.Store().Personal.Contact.Email,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		st := s.Store()
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"source": st.Source,
			"gaps":   len(st.Gaps()),
		})
	})

	if s.broker != nil {
		r.GET(EventsPath, gin.WrapH(s.broker))
	}

	s.router = r
	return s, nil
}

func (s *Server) index(c *gin.Context) {
	opts := page.Options{Root: "/"}
	if s.broker != nil {
		opts.Events = EventsPath
	}
	data, err := s.renderer.Data(s.Store(), s.media, opts)
	if err != nil {
		s.logger.Error("render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, page.IndexTemplate, data)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Store returns the current Content Store snapshot.
func (s *Server) Store() *content.Store { return s.store.Load() }

// Swap installs a new snapshot and tells open pages to reload.
func (s *Server) Swap(store *content.Store) {
	s.store.Store(store)
	if s.broker != nil {
		s.broker.Publish(sse.Event{
			Type: sse.ContentUpdated,
			Data: map[string]interface{}{"source": store.Source, "gaps": len(store.Gaps())},
		})
	}
}

// Run listens on addr until ctx is done, then shuts down gracefully within
// timeout.
func (s *Server) Run(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen %s: %w", addr, err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if s.broker != nil {
		// Open event streams never finish on their own.
		s.broker.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return <-errCh
}
