// Package watch re-runs an action whenever a saved page snapshot changes on
// disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce coalesces the burst of events a browser or editor emits
// while saving one file.
const DefaultDebounce = 300 * time.Millisecond

// Watcher observes a single file. The parent directory is watched so that
// save-by-rename is seen as well as in-place writes.
type Watcher struct {
	Path     string
	Debounce time.Duration
}

// Run calls onChange after each debounced change to Path until ctx is
// cancelled. onChange runs on the Run goroutine, so changes arriving while
// it executes are folded into the next call.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	// fire is nil while no change is pending; a nil channel never delivers.
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("snapshot changed")
			fire = time.After(debounce)
		case <-fire:
			fire = nil
			onChange(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", target).Msg("watch error")
		}
	}
}
