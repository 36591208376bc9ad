package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/pkg/fsutil"
)

const jobExt = ".url"

type implWatcher struct {
	inboxDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
}

// Start handles job files already in the inbox, then waits for new ones
// until ctx is done. Jobs run sequentially on the calling goroutine.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started. Monitoring: %s (*%s)", w.inboxDir, jobExt)

	if err := w.drainExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isJobFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-job file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New job detected: %s", filepath.Base(event.Name))

			// Small delay to ensure file is fully written
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return ctx.Err()
			}
			w.handleFile(ctx, event.Name)

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

func (w *implWatcher) drainExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inboxDir)
	if err != nil {
		return fmt.Errorf("read inbox: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && isJobFile(e.Name()) {
			files = append(files, filepath.Join(w.inboxDir, e.Name()))
		}
	}
	sort.Strings(files)

	for _, f := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.handleFile(ctx, f)
	}
	return nil
}

// handleFile parses and runs one job, then removes the file whatever the
// outcome so it is never picked up twice.
func (w *implWatcher) handleFile(ctx context.Context, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			w.logger.Error(ctx, "Failed to read %s: %v", path, err)
		}
		return
	}
	defer func() {
		if err := fsutil.RemoveFile(path); err != nil {
			w.logger.Warn(ctx, "Failed to remove job file %s: %v", path, err)
		}
	}()

	job, err := ParseJob(string(content))
	if err != nil {
		w.logger.Error(ctx, "Invalid job file %s: %v", filepath.Base(path), err)
		return
	}
	job.File = path

	if err := w.handler(ctx, job); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", filepath.Base(path), err)
		return
	}
	w.logger.Info(ctx, "[DONE] %s", filepath.Base(path))
}

// isJobFile checks if the file has the job extension
func isJobFile(path string) bool {
	name := filepath.Base(path)
	return !strings.HasPrefix(name, ".") && strings.ToLower(filepath.Ext(name)) == jobExt
}
