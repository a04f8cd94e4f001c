package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Silonidas/card-verse-architect/internal/events"
)

// DefaultPollInterval is the backup polling interval used when none is set.
const DefaultPollInterval = 2 * time.Second

// WatcherConfig holds configuration for a catalog Watcher.
type WatcherConfig struct {
	// PollInterval is the backup polling interval (in case file events are missed).
	PollInterval time.Duration

	// Dispatcher receives catalog:replaced events. Optional.
	Dispatcher *events.EventDispatcher

	// Logger for watcher activity. Defaults to slog.Default().
	Logger *slog.Logger
}

// Watcher reloads a catalog file into a Store whenever it changes.
type Watcher struct {
	store    *Store
	source   *FileSource
	interval time.Duration
	dispatch *events.EventDispatcher
	logger   *slog.Logger

	lastMod time.Time
}

// NewWatcher creates a watcher for src feeding store.
func NewWatcher(store *Store, src *FileSource, cfg WatcherConfig) *Watcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Watcher{
		store:    store,
		source:   src,
		interval: cfg.PollInterval,
		dispatch: cfg.Dispatcher,
		logger:   cfg.Logger,
	}
}

// Run loads the catalog once, then watches for changes until ctx is
// cancelled. A failed reload keeps the previous catalog.
func (w *Watcher) Run(ctx context.Context) (err error) {
	if err := w.reload(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// Watch the directory: editors often replace the file instead of writing it.
	path := filepath.Clean(w.source.Path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Watching catalog", "path", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				_ = w.reload(ctx)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", "error", err)
		case <-ticker.C:
			if w.changed() {
				_ = w.reload(ctx)
			}
		}
	}
}

// changed reports whether the file's modification time moved since the last load.
func (w *Watcher) changed() bool {
	info, err := os.Stat(w.source.Path)
	if err != nil {
		return false
	}
	return info.ModTime().After(w.lastMod)
}

func (w *Watcher) reload(ctx context.Context) error {
	if info, err := os.Stat(w.source.Path); err == nil {
		w.lastMod = info.ModTime()
	}

	n, err := w.store.Refresh(ctx, w.source)
	if err != nil {
		return err
	}

	w.logger.Info("Catalog reloaded", "path", w.source.Path, "cards", n)
	if w.dispatch != nil {
		w.dispatch.Dispatch(events.NewTypedEvent(ctx, events.TypeCatalogReplaced, events.CatalogReplacedEvent{
			Source: w.source.Name(),
			Cards:  n,
		}))
	}
	return nil
}
