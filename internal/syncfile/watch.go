package syncfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of writes a cloud-sync daemon makes
// while it downloads a replacement blob.
const debounceWindow = 500 * time.Millisecond

// Watch reports each time the sync blob in the folder is (re)written by
// another machine's export. One value is sent on the returned channel per
// settled change; the channel closes when ctx is done or the watcher fails.
//
// Parameters:
//   - ctx: Cancels the watch.
//   - folder: The shared folder containing the sync blob.
//
// Returns:
//   - <-chan time.Time: Change notifications (the settle time).
//   - error: Error when the folder cannot be watched.
func Watch(ctx context.Context, folder string) (<-chan time.Time, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory, not the file: cloud-sync daemons replace the
	// blob via rename, which drops a watch on the file itself.
	if err := watcher.Add(folder); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", folder, err)
	}

	changes := make(chan time.Time, 1)
	go func() {
		defer watcher.Close()
		defer close(changes)

		var timer *time.Timer
		var timerC <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != FileName {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
					timerC = timer.C
				} else {
					timer.Reset(debounceWindow)
				}
			case <-timerC:
				timer = nil
				timerC = nil
				select {
				case changes <- time.Now():
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("Sync folder watch error", "folder", folder, "error", err)
			}
		}
	}()
	return changes, nil
}
