package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"textstat/internal/report"
)

// Watcher re-analyzes watched files when they change and delivers the
// resulting reports on a channel. Rapid saves are debounced per path.
type Watcher struct {
	analyzer *Analyzer
	watcher  *fsnotify.Watcher
	logger   *zap.Logger

	debounce time.Duration
	lastSeen map[string]time.Time

	reports chan report.Report
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
}

// NewWatcher creates a Watcher that analyzes with a.
func NewWatcher(a *Analyzer, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		analyzer: a,
		watcher:  fw,
		logger:   logger,
		debounce: debounce,
		lastSeen: make(map[string]time.Time),
		reports:  make(chan report.Report, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Add watches a file or directory.
func (w *Watcher) Add(path string) error {
	return w.watcher.Add(path)
}

// Reports returns the channel reports are delivered on.
// The channel is closed when the watcher stops.
func (w *Watcher) Reports() <-chan report.Report {
	return w.reports
}

// Start begins watching in a background goroutine. Non-blocking.
// The watcher stops when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop(ctx)
}

// Stop shuts the watcher down and waits for the loop to exit. Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.doneCh
	}
	w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.reports)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if w.debounced(event.Name) {
				continue
			}
			w.handle(ctx, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// debounced reports whether an event for path falls inside the debounce
// window of the previous one, and records the event time.
func (w *Watcher) debounced(path string) bool {
	now := time.Now()
	last, seen := w.lastSeen[path]
	w.lastSeen[path] = now
	return seen && now.Sub(last) < w.debounce
}

func (w *Watcher) handle(ctx context.Context, path string) {
	rep, err := w.analyzer.AnalyzeFile(ctx, path)
	if err != nil {
		w.logger.Warn("re-analysis failed", zap.String("path", path), zap.Error(err))
		return
	}

	select {
	case w.reports <- rep:
	case <-ctx.Done():
	case <-w.stopCh:
	}
}
