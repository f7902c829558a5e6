package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/constkit/constkit/constclass"
)

// WatcherConfig configures the constants file watcher.
type WatcherConfig struct {
	// DebounceDelay is how long to wait for more changes before reloading.
	DebounceDelay time.Duration

	// Logger for watch events.
	Logger *slog.Logger
}

// Validate checks that the configuration is valid.
func (c *WatcherConfig) Validate() error {
	if c.DebounceDelay < 0 {
		return fmt.Errorf("debounce delay must not be negative")
	}
	return nil
}

// WatchOperation indicates what happened to the backing file.
type WatchOperation string

const (
	// OpReload means the file changed and the class was reloaded.
	OpReload WatchOperation = "reload"
	// OpRemove means the file disappeared and the class was emptied.
	OpRemove WatchOperation = "remove"
	// OpError means a reload failed; the class keeps its previous constants.
	OpError WatchOperation = "error"
)

// WatchEvent reports one synchronization of the class with its file.
type WatchEvent struct {
	// Path is the watched file.
	Path string

	// Op is the kind of event.
	Op WatchOperation

	// Changes lists what the synchronization changed (empty for OpError).
	Changes constclass.Changes

	// Err is set for OpError events.
	Err error
}

// Watcher keeps a class in sync with its backing file. The file's directory
// is watched rather than the file itself, because editors typically replace
// files by rename.
type Watcher struct {
	class   *constclass.Class
	path    string
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before reloading
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Output channel, closed when the event loop exits
	events chan WatchEvent

	stopOnce sync.Once
}

// NewWatcher creates a watcher that reloads path into class on change.
func NewWatcher(class *constclass.Class, path string, config WatcherConfig) (*Watcher, error) {
	if class == nil {
		return nil, fmt.Errorf("class is nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		class:   class,
		path:    abs,
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
		events:  make(chan WatchEvent, 16),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start loads the file once, then begins watching its directory for
// changes. Watching stops when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if _, err := Reload(w.class, w.path, WithLogger(w.logger)); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.processEvents(ctx)

	w.logger.Info("Constants watcher started",
		"path", w.path,
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher. The events channel closes once the event loop
// drains.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Cancellation also releases the fsnotify handle.
			if err := w.Stop(); err != nil {
				w.logger.Warn("Closing filesystem watcher failed", "error", err)
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
			w.sendEvent(WatchEvent{Path: w.path, Op: OpError, Err: err})

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent accumulates an fsnotify event for the watched file.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	w.pendingMu.Lock()
	w.pending[w.path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Constants file change detected",
		"path", w.path,
		"op", event.Op.String())
}

// flushPending processes accumulated changes.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := make(map[string]fsnotify.Op, len(w.pending))
	for k, v := range w.pending {
		toProcess[k] = v
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for _, op := range toProcess {
		// Remove and rename usually mean the file is gone, but editors
		// that save by rename put a new file in its place immediately.
		// Whether the path exists now decides between the two.
		if _, err := os.Stat(w.path); err != nil {
			if !os.IsNotExist(err) {
				w.sendEvent(WatchEvent{Path: w.path, Op: OpError, Err: err})
				continue
			}
			changes := w.class.Replace(nil)
			w.sendEvent(WatchEvent{Path: w.path, Op: OpRemove, Changes: changes})
			continue
		}

		changes, err := Reload(w.class, w.path, WithLogger(w.logger))
		if err != nil {
			w.logger.Warn("Constants reload failed",
				"path", w.path,
				"op", op.String(),
				"error", err)
			w.sendEvent(WatchEvent{Path: w.path, Op: OpError, Err: err})
			continue
		}
		if changes.Empty() {
			continue
		}
		w.sendEvent(WatchEvent{Path: w.path, Op: OpReload, Changes: changes})
	}
}

// sendEvent sends an event without blocking the event loop.
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", string(event.Op))
	default:
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path)
	}
}
