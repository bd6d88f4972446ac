package adapter

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	m "github.com/mouse-blink/keytrim/internal/model"
)

// DefaultWatchDebounce is how long a folder must stay quiet before a change
// is reported.
const DefaultWatchDebounce = 200 * time.Millisecond

// minWatchTick bounds how often the debounce timer is polled.
const minWatchTick = time.Millisecond

// FolderWatcher reports when anything below a folder changes.
type FolderWatcher interface {
	// Watch starts watching root and every directory below it. The returned
	// channel receives one signal per debounced burst of changes and is
	// closed once ctx is done.
	Watch(ctx context.Context, root m.Path) (<-chan struct{}, error)
}

// LocalFolderWatcher implements FolderWatcher with fsnotify.
type LocalFolderWatcher struct {
	debounce time.Duration
}

// NewLocalFolderWatcher creates a watcher; a non-positive debounce falls
// back to DefaultWatchDebounce.
func NewLocalFolderWatcher(debounce time.Duration) *LocalFolderWatcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	return &LocalFolderWatcher{debounce: debounce}
}

// Watch begins watching root recursively.
func (w *LocalFolderWatcher) Watch(ctx context.Context, root m.Path) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := addTree(fw, string(root)); err != nil {
		_ = fw.Close()

		return nil, err
	}

	changes := make(chan struct{}, 1)

	go w.loop(ctx, fw, changes)

	return changes, nil
}

func (w *LocalFolderWatcher) loop(ctx context.Context, fw *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)
	defer func() { _ = fw.Close() }()

	ticker := time.NewTicker(max(w.debounce/2, minWatchTick))
	defer ticker.Stop()

	var last time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(fw, event.Name); err != nil {
						log.Warn().Err(err).Str("dir", event.Name).Msg("cannot watch new directory")
					}
				}
			}

			last = time.Now()

		case <-ticker.C:
			if last.IsZero() || time.Since(last) < w.debounce {
				continue
			}

			last = time.Time{}

			select {
			case changes <- struct{}{}:
			default:
				// A signal is already pending; the consumer rebuilds once.
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}

			log.Warn().Err(err).Msg("folder watch error")
		}
	}
}

func addTree(fw *fsnotify.Watcher, root string) error {
	return NewLocalRenameFSAdapter().Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		return fw.Add(path)
	})
}
