package definitions

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates a FileStore when its definition sources change on
// disk. Events are debounced because editors write files in bursts.
type Watcher struct {
	store    *FileStore
	logger   *slog.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher constructs a watcher over the store's definitions directory.
func NewWatcher(store *FileStore, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(store.dir); err != nil {
		fsw.Close()
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:    store,
		logger:   logger,
		debounce: 200 * time.Millisecond,
		fsw:      fsw,
	}, nil
}

// Run processes filesystem events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerCh = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "definition watcher error", "error", err)
		case <-timerCh:
			timerCh = nil
			w.store.Invalidate()
			w.logger.InfoContext(ctx, "definition sources changed, cache invalidated")
		}
	}
}

// relevant filters events down to writes touching a definition source.
func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	for _, base := range []string{checklistBase, rulesBase} {
		for _, ext := range extensions {
			if name == base+ext {
				return true
			}
		}
	}
	return false
}
