// Package watch notices when the persisted task collection is changed by
// another process so an open view can reload it.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-pkgz/lgr"
)

// DefaultDelay is how long the watcher waits for a burst of events to settle.
const DefaultDelay = 150 * time.Millisecond

// Watcher reports changes to a single file. It watches the parent directory
// because atomic writes replace the file instead of modifying it.
type Watcher struct {
	path    string
	delay   time.Duration
	log     lgr.L
	watcher *fsnotify.Watcher
	changes chan struct{}

	debouncer *debouncer
	mu        sync.Mutex
	lastHash  string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) { w.delay = d }
}

// WithLogger sets the logger for watch errors and skipped events.
func WithLogger(l lgr.L) Option {
	return func(w *Watcher) { w.log = l }
}

// New creates a watcher for path. Call Start to begin receiving changes.
func New(path string, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch: empty path")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	w := &Watcher{
		path:    filepath.Clean(path),
		delay:   DefaultDelay,
		log:     lgr.NoOp,
		watcher: fw,
		changes: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = newDebouncer(w.delay, w.flush)
	return w, nil
}

// Changes delivers one value per settled change. Bursts are coalesced, so a
// slow reader sees at most one pending notification.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.lastHash, _ = fileHash(w.path)

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.eventLoop(ctx)
	w.log.Logf("DEBUG watching %s", w.path)
	return nil
}

// Stop ends the watch and releases the fsnotify handle.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	_ = w.watcher.Close()
	w.debouncer.stop()
	w.wg.Wait()
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.debouncer.add()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Logf("WARN watch error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// flush runs once a burst has settled. Events that leave the content
// unchanged, such as a rewrite of identical bytes, are dropped.
func (w *Watcher) flush() {
	hash, err := fileHash(w.path)
	if err != nil {
		hash = ""
	}

	w.mu.Lock()
	changed := hash != w.lastHash
	w.lastHash = hash
	w.mu.Unlock()

	if !changed {
		w.log.Logf("DEBUG skip (no change): %s", w.path)
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

func fileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// debouncer fires fn once no add has happened for delay.
type debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	fn      func()
	stopped bool
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) add() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
