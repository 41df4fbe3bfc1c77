// Package watch observes a directory of recorder output and dispatches
// completed trace files to subscribers. Writes are debounced so a file
// is only dispatched once the recorder has finished flushing it.
package watch

import (
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/pagewright/pkg/errors"
)

// ChangeType describes the kind of file change observed.
type ChangeType string

const (
	ChangeCreated  ChangeType = "created"
	ChangeModified ChangeType = "modified"
)

const (
	defaultMaxHistory = 100
	defaultSettle     = 200 * time.Millisecond
)

// Event records an observed trace file change.
type Event struct {
	Path    string
	Type    ChangeType
	ModTime time.Time
}

// Handler receives trace file events.
type Handler func(event Event)

// Subscription binds a glob pattern to a handler.
type Subscription struct {
	ID      string
	Pattern string
	Handler Handler
}

// Watcher dispatches debounced directory events to pattern-matched
// subscribers and keeps a bounded history of what it saw.
type Watcher struct {
	mu            sync.RWMutex
	subscriptions map[string]*Subscription
	recent        []Event
	maxHistory    int
	settle        time.Duration

	fsw     *fsnotify.Watcher
	pending map[string]*time.Timer
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithSettleDelay overrides how long a file must stay quiet before it
// is dispatched.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.settle = d
		}
	}
}

// WithMaxHistory bounds the retained event history.
func WithMaxHistory(n int) Option {
	return func(w *Watcher) {
		if n > 0 {
			w.maxHistory = n
		}
	}
}

// New creates a watcher. Start begins observing a directory.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		subscriptions: make(map[string]*Subscription),
		maxHistory:    defaultMaxHistory,
		settle:        defaultSettle,
		pending:       make(map[string]*time.Timer),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Subscribe registers a handler for files matching a glob pattern. A
// bare pattern without a slash matches against the file's base name.
func (w *Watcher) Subscribe(pattern string, handler Handler) string {
	if w == nil || handler == nil {
		return ""
	}
	id := ulid.Make().String()
	sub := &Subscription{
		ID:      id,
		Pattern: strings.TrimSpace(pattern),
		Handler: handler,
	}
	w.mu.Lock()
	w.subscriptions[id] = sub
	w.mu.Unlock()
	return id
}

// Unsubscribe removes a subscription.
func (w *Watcher) Unsubscribe(id string) {
	if w == nil || strings.TrimSpace(id) == "" {
		return
	}
	w.mu.Lock()
	delete(w.subscriptions, id)
	w.mu.Unlock()
}

// Notify records an event and invokes every matching subscriber.
func (w *Watcher) Notify(event Event) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.recent = append(w.recent, event)
	if len(w.recent) > w.maxHistory {
		w.recent = w.recent[len(w.recent)-w.maxHistory:]
	}
	subs := make([]*Subscription, 0, len(w.subscriptions))
	for _, sub := range w.subscriptions {
		subs = append(subs, sub)
	}
	w.mu.Unlock()

	for _, sub := range subs {
		if matchesPattern(sub.Pattern, event.Path) {
			sub.Handler(event)
		}
	}
}

// Recent returns the most recent events, newest first.
func (w *Watcher) Recent(limit int) []Event {
	if w == nil {
		return nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if limit <= 0 || limit > len(w.recent) {
		limit = len(w.recent)
	}
	out := make([]Event, 0, limit)
	for i := len(w.recent) - 1; i >= len(w.recent)-limit; i-- {
		out = append(out, w.recent[i])
	}
	return out
}

// Start begins observing dir. Events are debounced per file by the
// settle delay, then dispatched through Notify. Start returns after the
// event loop is running; Close shuts it down.
func (w *Watcher) Start(dir string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create file watcher")
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to watch directory").
			WithContext("dir", dir)
	}
	w.fsw = fsw

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		event, ok := <-w.fsw.Events
		if !ok {
			return
		}
		if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
			continue
		}
		w.debounce(event)
	}
}

// debounce delays dispatch until the file has been quiet for the settle
// window; repeated writes push the deadline out.
func (w *Watcher) debounce(event fsnotify.Event) {
	changeType := ChangeModified
	if event.Op.Has(fsnotify.Create) {
		changeType = ChangeCreated
	}
	path := event.Name

	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, exists := w.pending[path]; exists {
		timer.Reset(w.settle)
		return
	}
	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.Notify(Event{Path: path, Type: changeType, ModTime: time.Now()})
	})
}

// Errors exposes the underlying watcher's error stream. It is nil
// before Start.
func (w *Watcher) Errors() <-chan error {
	if w.fsw == nil {
		return nil
	}
	return w.fsw.Errors
}

// Close stops the watcher and waits for the event loop to drain.
func (w *Watcher) Close() error {
	w.closeMu.Lock()
	defer w.closeMu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	<-w.done
	return err
}

func matchesPattern(pattern, filePath string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || pattern == "*" {
		return true
	}
	cleanPath := filepath.ToSlash(strings.TrimSpace(filePath))
	cleanPattern := filepath.ToSlash(pattern)
	if ok, _ := path.Match(cleanPattern, cleanPath); ok {
		return true
	}
	if !strings.Contains(cleanPattern, "/") {
		base := path.Base(cleanPath)
		if ok, _ := path.Match(cleanPattern, base); ok {
			return true
		}
	}
	return false
}
