package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Veraticus/bottleshop/internal/config"
)

// Watch calls onChange with each valid revision of the catalog file until
// ctx is done. The parent directory is watched so editors that replace the
// file on save are seen. Revisions that fail to parse are logged and skipped.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(*Document)) error {
	path, err := filepath.Abs(config.ExpandPath(path))
	if err != nil {
		return fmt.Errorf("failed to resolve catalog path: %w", err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	slog.Debug("watching catalog file", "path", path)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("catalog watcher error", "error", err)

		case <-timer.C:
			doc, err := LoadFile(path)
			if err != nil {
				slog.Warn("ignoring catalog revision", "path", path, "error", err)
				continue
			}
			slog.Info("catalog file changed", "path", path, "categories", len(doc.Categories))
			onChange(doc)
		}
	}
}
