// Package watch re-triggers extraction when the input document changes.
// The parent directory is watched rather than the file itself because most
// editors save by writing a temp file and renaming over the original, which
// drops a watch placed directly on the file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch blocks, invoking onChange after each debounced burst of changes to
// the file at path. Returns when ctx is cancelled or the watcher breaks.
// Each onChange invocation is independent; the watcher carries no state
// between triggers.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	// Debounce timer, armed on the first relevant event and reset on each
	// follow-up so a save burst triggers exactly one re-run.
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event, abs) {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			pending = false
			onChange()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("warning: watch error: %v\n", err)
		}
	}
}

// relevant filters directory events down to mutations of the watched file.
func relevant(event fsnotify.Event, abs string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	evAbs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return evAbs == abs
}
