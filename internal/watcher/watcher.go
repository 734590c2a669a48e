package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

var linkExtensions = []string{".txt", ".url"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
	// inflight holds paths whose handler has not returned yet.
	inflight sync.Map
}

// Start handles link files already in the inbox, then every new one, until ctx is done.
// In-flight handlers are waited for before it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported link files: %s", strings.Join(linkExtensions, ", "))
	defer w.wg.Wait()

	if err := w.drain(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing summaries to complete...")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isLinkFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-link file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New link file detected: %s", event.Name)

			// let the writer finish
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			// drain may already have handled and archived it
			if _, err := os.Stat(event.Name); err != nil {
				w.logger.Debug(ctx, "Link file gone before dispatch: %s", event.Name)
				continue
			}

			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// drain dispatches link files that were dropped while nobody was watching.
func (w *implWatcher) drain(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("read inbox: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !isLinkFile(e.Name()) {
			continue
		}
		if err := w.dispatch(ctx, filepath.Join(w.inputDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// dispatch blocks until a handler slot is free, then runs the handler in a goroutine.
// A path that is still being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if _, busy := w.inflight.LoadOrStore(path, struct{}{}); busy {
		w.logger.Debug(ctx, "Already handling %s", path)
		return nil
	}

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.inflight.Delete(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.inflight.Delete(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func isLinkFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range linkExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
