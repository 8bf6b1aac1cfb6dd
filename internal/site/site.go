// Package site exports the portfolio as a static directory: index.html, the
// embedded assets and a copy of the media directory.
package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
)

// ErrUnsafeOutput is returned for output directories that must never be
// wiped, such as the working directory itself.
var ErrUnsafeOutput = errors.New("site: refusing to clean output directory")

// Options configures an export.
type Options struct {
	OutputDir string
	// BaseURL prefixes asset and media URLs. Empty keeps them relative so the
	// export can be opened from disk.
	BaseURL string
	Now     time.Time
}

// Result summarizes an export.
type Result struct {
	OutputDir string
	Files     int
	Gaps      []string
}

// Build writes the export, replacing whatever was in the output directory.
func Build(store *content.Store, renderer *page.Renderer, media content.Media, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := filepath.Clean(opts.OutputDir)
	if opts.OutputDir == "" || out == "." || out == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafeOutput, opts.OutputDir)
	}

	logger.Info("cleaning output directory", zap.String("dir", out))
	if err := os.RemoveAll(out); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	res := &Result{OutputDir: out, Gaps: store.Gaps()}

	if err := os.CopyFS(filepath.Join(out, page.AssetsPrefix), page.Static()); err != nil {
		return nil, fmt.Errorf("failed to copy assets: %w", err)
	}
	if fsys := media.FS(); fsys != nil {
		if err := os.CopyFS(filepath.Join(out, content.MediaPrefix), fsys); err != nil {
			return nil, fmt.Errorf("failed to copy media: %w", err)
		}
	}

	f, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to create index.html: %w", err)
	}
	renderErr := renderer.Render(f, store, media, page.Options{Root: root(opts.BaseURL), Now: opts.Now})
	closeErr := f.Close()
	if renderErr != nil {
		return nil, fmt.Errorf("failed to render index.html: %w", renderErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to write index.html: %w", closeErr)
	}

	err = filepath.WalkDir(out, func(_ string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			res.Files++
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("site built", zap.String("dir", out), zap.Int("files", res.Files), zap.Int("gaps", len(res.Gaps)))
	return res, nil
}

func root(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + "/"
}
