package people

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the directory holding the glob pattern and sends a freshly
// discovered roster on updates whenever a file is created, removed or
// renamed there. Only the newest roster is kept if the receiver is slow.
// It runs until ctx is cancelled.
func Watch(ctx context.Context, pattern string, updates chan *Roster, log *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(pattern)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug("watching portrait directory", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			roster, err := Discover(pattern)
			if err != nil {
				log.Warn("portrait rescan failed, keeping previous roster", "err", err)
				continue
			}
			log.Debug("portrait directory changed", "event", event.Op.String(), "people", roster.Len())
			offerLatest(ctx, updates, roster)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("portrait watcher error", "err", err)
		}
	}
}

// offerLatest sends r on a buffered channel, replacing any roster that has
// not been picked up yet. Watch is the only sender. An unbuffered channel
// gets a plain blocking send.
func offerLatest(ctx context.Context, updates chan *Roster, r *Roster) {
	if cap(updates) == 0 {
		select {
		case updates <- r:
		case <-ctx.Done():
		}
		return
	}
	for {
		select {
		case updates <- r:
			return
		default:
		}
		select {
		case <-updates:
		default:
		}
	}
}
