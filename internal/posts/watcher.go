package posts

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called for each content change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, id string)

// Watch starts an fsnotify watcher on the content directory and maps file
// change events to post change callbacks until ctx is cancelled. The
// directory convention is flat, so only the root is watched.
//
// fsnotify fires Rename on the old path only; the new path arrives as a
// separate Create event, so a rename surfaces as deleted + created.
func Watch(ctx context.Context, contentDir string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(contentDir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", contentDir))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ext) {
				continue
			}
			id := strings.TrimSuffix(name, ext)

			var kind string
			switch {
			case ev.Op&fsnotify.Create != 0:
				kind = "created"
			case ev.Op&fsnotify.Write != 0:
				kind = "updated"
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				kind = "deleted"
			default:
				continue
			}

			logger.Debug("watcher: post event", slog.String("id", id), slog.String("op", kind))
			if cb != nil {
				cb(kind, id)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
