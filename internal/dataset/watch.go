package dataset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc is called after the store took a new snapshot
type ReloadFunc func(version uint64, count int)

// ReloadErrorFunc is called when a changed file could not be loaded. The
// store keeps its previous snapshot.
type ReloadErrorFunc func(err error)

// WatcherConfig configures a people file watcher
type WatcherConfig struct {
	Path     string
	Store    *Store
	OnReload ReloadFunc
	OnError  ReloadErrorFunc
	// Settle is how long the file must stay quiet before it is re-read
	Settle   time.Duration
}

// Watcher re-reads a people file when it changes on disk
type Watcher struct {
	path     string
	store    *Store
	onReload ReloadFunc
	onError  ReloadErrorFunc
	settle   time.Duration
	watcher  *fsnotify.Watcher

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewWatcher creates a watcher for config.Path
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	if config.Store == nil {
		return nil, fmt.Errorf("watcher needs a store")
	}

	absPath, err := filepath.Abs(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve people file path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	settle := config.Settle
	if settle <= 0 {
		settle = 100 * time.Millisecond
	}

	return &Watcher{
		path:     absPath,
		store:    config.Store,
		onReload: config.OnReload,
		onError:  config.OnError,
		settle:   settle,
		watcher:  fsw,
	}, nil
}

// Start watches the parent directory, which also catches editors that
// replace the file through a rename.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.wg.Add(1)
	go w.processEvents(ctx)

	log.Printf("Watching people file %s", w.path)
	return nil
}

// Stop closes the watcher and waits for the event loop to exit
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	var timer *time.Timer
	var flush <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.settle)
			}
			flush = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("People file watcher error: %v", err)

		case <-flush:
			flush = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reload keeps the previous snapshot when the new file does not load
func (w *Watcher) reload() {
	people, err := Load(w.path)
	if err != nil {
		log.Printf("Keeping previous people list: %v", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}

	version := w.store.Replace(people)
	log.Printf("Reloaded %d people from %s (version %d)", len(people), w.path, version)

	if w.onReload != nil {
		w.onReload(version, len(people))
	}
}
