// Package watch reports debounced changes to the content file and the media
// directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before reporting.
const DefaultDebounce = 500 * time.Millisecond

// ErrNothingToWatch is returned by Run when none of the targets exist.
var ErrNothingToWatch = errors.New("watch: nothing to watch")

// Watcher watches files and directories. Files are watched through their
// parent directory so editors that replace files on save are still seen.
type Watcher struct {
	targets  []string
	debounce time.Duration
	logger   *zap.Logger
}

// New returns a watcher over targets. Empty entries are ignored.
func New(targets []string, debounce time.Duration, logger *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{debounce: debounce, logger: logger}
	for _, t := range targets {
		if t != "" {
			w.targets = append(w.targets, filepath.Clean(t))
		}
	}
	return w
}

// Run blocks until ctx is done, calling onChange once per settled burst of
// relevant events. onChange runs on the watcher goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, t := range w.targets {
		info, err := os.Stat(t)
		switch {
		case err != nil:
			w.logger.Warn("not watching missing path", zap.String("path", t))
			continue
		case info.IsDir():
			if err := w.addTree(fw, t); err != nil {
				return err
			}
			dirs[t] = true
		default:
			if err := fw.Add(filepath.Dir(t)); err != nil {
				return fmt.Errorf("watch %s: %w", t, err)
			}
			files[t] = true
		}
	}
	if len(files) == 0 && len(dirs) == 0 {
		return ErrNothingToWatch
	}

	relevant := func(name string) bool {
		name = filepath.Clean(name)
		if files[name] {
			return true
		}
		for d := range dirs {
			if rel, err := filepath.Rel(d, name); err == nil && rel != ".." && !startsWithParent(rel) {
				return true
			}
		}
		return false
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !relevant(event.Name) {
				continue
			}
			w.logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := fw.Add(event.Name); err != nil {
					w.logger.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("error walking directory", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
