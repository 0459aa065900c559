package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/foodnow/foodnow-go/core"
)

// DashboardService fetches the owner snapshot
type DashboardService interface {
	Dashboard(ctx context.Context) (*core.DashboardSnapshot, error)
}

// Notifier emits user-facing toasts
type Notifier interface {
	Success(message string) int64
	Error(message string) int64
	Loading(message string) int64
	Remove(id int64)
}

// DefaultPollInterval matches the legacy dashboard refresh cadence
const DefaultPollInterval = 15 * time.Second

// Poller refreshes the store on a fixed interval. Each fetch replaces
// the snapshot wholesale; a growing pending count raises one toast and
// fires the sound hook. Fetch errors are logged and polling continues,
// there are no retries beyond the next scheduled tick.
type Poller struct {
	svc      DashboardService
	store    *Store
	notifier Notifier
	logger   core.Logger
	interval time.Duration
	onSound  func(newOrders int)

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc

	newTicker func(d time.Duration) (<-chan time.Time, func())
}

// PollerOption customizes a Poller
type PollerOption func(*Poller)

// WithInterval overrides the poll cadence
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithPollerLogger sets the poller's logger
func WithPollerLogger(logger core.Logger) PollerOption {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithNewOrderSound registers the hook that plays the notification
// sound when new pending orders arrive. It runs on the poll goroutine.
func WithNewOrderSound(fn func(newOrders int)) PollerOption {
	return func(p *Poller) { p.onSound = fn }
}

// NewPoller creates a poller bound to a store
func NewPoller(svc DashboardService, store *Store, notifier Notifier, opts ...PollerOption) *Poller {
	p := &Poller{
		svc:      svc,
		store:    store,
		notifier: notifier,
		logger:   &core.NoOpLogger{},
		interval: DefaultPollInterval,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			ticker := time.NewTicker(d)
			return ticker.C, ticker.Stop
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start fetches once immediately, then keeps polling until Stop or
// context cancellation. Starting twice fails with
// core.ErrAlreadyStarted.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return core.ErrAlreadyStarted
	}
	p.started = true
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	p.Poll(runCtx)

	go func() {
		tick, stop := p.newTicker(p.interval)
		defer stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-tick:
				p.Poll(runCtx)
			}
		}
	}()
	return nil
}

// Stop halts polling. Safe to call repeatedly.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Poll runs one fetch-compare-replace cycle. The pending delta is
// computed against the snapshot already in memory, never against a
// second fetch.
func (p *Poller) Poll(ctx context.Context) {
	snap, err := p.svc.Dashboard(ctx)
	if err != nil {
		p.logger.Error("Dashboard poll failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	hadPrevious := p.store.Loaded()
	previousPending := p.store.PendingCount()
	p.store.Replace(*snap)

	if !hadPrevious {
		return
	}
	if delta := snap.PendingCount() - previousPending; delta > 0 {
		p.notifier.Success(fmt.Sprintf("%d new order(s) received!", delta))
		if p.onSound != nil {
			p.onSound(delta)
		}
		p.logger.Info("New pending orders", map[string]interface{}{
			"count": delta,
		})
	}
}
