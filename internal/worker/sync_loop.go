package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

const fallbackInterval = 20 * time.Second

// Syncer exposes the subset of application functionality required by the loop.
type Syncer interface {
	Sync(ctx context.Context) error
	PollInterval() time.Duration
	Wakeups() <-chan struct{}
}

// SyncLoop polls the spreadsheet on a timer. It ticks once on start, then
// every poll interval. A wake-up ticks immediately and restarts the timer
// with the current interval.
type SyncLoop struct {
	syncer Syncer
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSyncLoop constructs the sync loop.
func NewSyncLoop(syncer Syncer, logger *slog.Logger) *SyncLoop {
	return &SyncLoop{syncer: syncer, logger: logger}
}

// Start launches background polling. Calling Start on a running loop is a no-op.
func (l *SyncLoop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	l.wg.Add(1)
	go l.run(runCtx)
}

// Stop cancels polling and waits for the running tick to return.
func (l *SyncLoop) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()

	l.wg.Wait()
}

func (l *SyncLoop) run(ctx context.Context) {
	defer l.wg.Done()

	l.tick(ctx)
	interval := l.interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.tick(ctx)
		case <-l.syncer.Wakeups():
			l.tick(ctx)
		}

		if next := l.interval(); next != interval {
			l.logger.Info("poll interval changed", slog.Duration("interval", next))
			interval = next
		}
		ticker.Reset(interval)
	}
}

func (l *SyncLoop) interval() time.Duration {
	if d := l.syncer.PollInterval(); d > 0 {
		return d
	}
	return fallbackInterval
}

func (l *SyncLoop) tick(ctx context.Context) {
	err := l.syncer.Sync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
	case errors.Is(err, domainErrors.ErrSyncInProgress),
		errors.Is(err, domainErrors.ErrNoSession),
		errors.Is(err, domainErrors.ErrNotConfigured):
		l.logger.Debug("sync skipped", slog.String("reason", err.Error()))
	default:
		l.logger.Warn("sync failed", slog.String("error", err.Error()))
	}
}
