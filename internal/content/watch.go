package content

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the document at path whenever it changes on disk and sends valid documents to
// changes. Invalid edits are logged and skipped. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, changes chan<- Document) {
	if path == "" {
		return
	}

	watcher, errWatcher := fsnotify.NewWatcher()
	if errWatcher != nil {
		slog.Error("Failed to create content watcher", slog.String("error", errWatcher.Error()))

		return
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("watcher close error", slog.String("err", err.Error()))
		}
	}(watcher)

	// Editors commonly replace the file, so watch the parent and filter by name.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		slog.Error("Error adding watch for content", slog.String("error", err.Error()))

		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", slog.String("error", err.Error()))
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			doc, errLoad := Load(path)
			if errLoad != nil {
				slog.Error("Failed to reload content", slog.String("path", path), slog.String("error", errLoad.Error()))

				continue
			}

			slog.Debug("Content reloaded", slog.String("path", path))

			select {
			case changes <- doc:
			case <-ctx.Done():
				return
			}
		}
	}
}
