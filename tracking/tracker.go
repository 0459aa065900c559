// Package tracking drives the live progress view for a single order,
// including the simulated delivery countdown that marks an order
// DELIVERED when its ETA elapses.
package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/foodnow/foodnow-go/core"
)

// OrderService is the slice of the API the tracker needs
type OrderService interface {
	Order(ctx context.Context, orderID int) (*core.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status core.OrderStatus) error
}

// Notifier emits user-facing toasts
type Notifier interface {
	Success(message string) int64
	Error(message string) int64
}

// Waypoints is the number of route marks rendered on the
// restaurant-to-customer leg, passed at 25/50/75/100% of the simulated
// trip.
const Waypoints = 4

// DefaultSimDuration is the simulated restaurant-to-customer travel
// time used when no override is configured.
const DefaultSimDuration = 30 * time.Second

// Progress is a point-in-time view of the tracked order
type Progress struct {
	OrderID         int
	Status          core.OrderStatus
	Remaining       time.Duration
	Display         string
	ETA             time.Time
	Fraction        float64
	WaypointsPassed int
	CountingDown    bool
}

// Tracker owns the countdown for one order. Create one tracker per
// viewed order; a tracker runs at most one countdown in its lifetime.
type Tracker struct {
	orderID  int
	orders   OrderService
	notifier Notifier
	logger   core.Logger
	simFor   time.Duration

	mu        sync.Mutex
	order     *core.Order
	started   bool
	counting  bool
	finished  bool
	completed bool
	remaining time.Duration
	eta       time.Time
	cancel    context.CancelFunc

	// test seams
	now       func() time.Time
	newTicker func(d time.Duration) (<-chan time.Time, func())

	onChange func(Progress)
}

// TrackerOption customizes a Tracker
type TrackerOption func(*Tracker)

// WithLogger sets the tracker's logger
func WithLogger(logger core.Logger) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSimDuration overrides the simulated delivery duration
func WithSimDuration(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		if d > 0 {
			t.simFor = d
		}
	}
}

// WithOnChange registers a callback invoked after every countdown tick
// and after completion. The callback runs on the tracker's goroutine
// and must not block.
func WithOnChange(fn func(Progress)) TrackerOption {
	return func(t *Tracker) { t.onChange = fn }
}

// NewTracker creates a tracker for one order
func NewTracker(orders OrderService, notifier Notifier, orderID int, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		orderID:  orderID,
		orders:   orders,
		notifier: notifier,
		logger:   &core.NoOpLogger{},
		simFor:   DefaultSimDuration,
		now:      time.Now,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			ticker := time.NewTicker(d)
			return ticker.C, ticker.Stop
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start fetches the order and, when it is out for delivery, begins the
// one-second countdown toward the simulated ETA. Orders already in a
// terminal state are displayed as-is with no timer. A tracker starts
// once; a second call fails with core.ErrAlreadyStarted.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return core.ErrAlreadyStarted
	}
	t.started = true
	t.mu.Unlock()

	order, err := t.orders.Order(ctx, t.orderID)
	if err != nil {
		t.logger.Error("Failed to load tracked order", map[string]interface{}{
			"order_id": t.orderID,
			"error":    err.Error(),
		})
		t.notifier.Error(core.UserMessageOf(err, "Could not load your order."))
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.order = order

	if order.Status.IsTerminal() {
		t.completed = true
		return nil
	}
	if order.Status != core.StatusOutForDelivery {
		return nil
	}

	t.counting = true
	t.remaining = t.simFor
	t.eta = t.now().Add(t.simFor)

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go t.run(runCtx)

	t.logger.Info("Delivery countdown started", map[string]interface{}{
		"order_id": t.orderID,
		"eta":      t.eta.Format(time.RFC3339),
	})
	return nil
}

func (t *Tracker) run(ctx context.Context) {
	tick, stop := t.newTicker(time.Second)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			if t.step(ctx) {
				return
			}
		}
	}
}

// step advances the countdown by one tick and reports whether the
// countdown finished.
func (t *Tracker) step(ctx context.Context) bool {
	t.mu.Lock()
	if !t.counting {
		t.mu.Unlock()
		return true
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		progress := t.progressLocked()
		t.mu.Unlock()
		t.emit(progress)
		return false
	}
	t.remaining = 0
	t.counting = false
	t.finished = true
	t.mu.Unlock()

	t.complete(ctx)
	return true
}

// complete runs once, when the countdown hits zero
func (t *Tracker) complete(ctx context.Context) {
	if err := t.MarkDelivered(ctx); err != nil {
		t.logger.Error("Failed to mark order delivered", map[string]interface{}{
			"order_id": t.orderID,
			"error":    err.Error(),
		})
		t.notifier.Error(core.UserMessageOf(err, "Could not update your order status."))
		t.emit(t.Progress())
		return
	}
	t.notifier.Success("Your order has been delivered!")
	t.emit(t.Progress())
}

// MarkDelivered transitions the tracked order to DELIVERED and
// re-fetches it so the server's view wins over the local countdown.
// Calling it when the order is already terminal is a no-op.
func (t *Tracker) MarkDelivered(ctx context.Context) error {
	t.mu.Lock()
	if t.order == nil {
		t.mu.Unlock()
		return core.ErrNotStarted
	}
	if t.order.Status.IsTerminal() {
		t.completed = true
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	if err := t.orders.UpdateStatus(ctx, t.orderID, core.StatusDelivered); err != nil {
		return err
	}

	// Reconcile with the server after the write. A failed re-fetch
	// falls back to the status we just set.
	order, err := t.orders.Order(ctx, t.orderID)
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.logger.Warn("Could not reconcile order after delivery", map[string]interface{}{
			"order_id": t.orderID,
			"error":    err.Error(),
		})
		t.order.Status = core.StatusDelivered
	} else {
		t.order = order
	}
	t.completed = true
	return nil
}

// Stop tears the countdown down. Safe to call at any point, any number
// of times.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.counting = false
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Order returns the last known copy of the tracked order, nil before
// Start succeeds.
func (t *Tracker) Order() *core.Order {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.order == nil {
		return nil
	}
	copied := *t.order
	return &copied
}

// Progress returns the current countdown view
func (t *Tracker) Progress() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progressLocked()
}

func (t *Tracker) progressLocked() Progress {
	p := Progress{
		OrderID:      t.orderID,
		Remaining:    t.remaining,
		Display:      FormatRemaining(t.remaining),
		ETA:          t.eta,
		CountingDown: t.counting,
	}
	if t.order != nil {
		p.Status = t.order.Status
	}
	if t.simFor > 0 && (t.counting || t.finished || t.completed) {
		elapsed := t.simFor - t.remaining
		p.Fraction = float64(elapsed) / float64(t.simFor)
		if p.Fraction > 1 {
			p.Fraction = 1
		}
		p.WaypointsPassed = int(p.Fraction * Waypoints)
	}
	return p
}

func (t *Tracker) emit(p Progress) {
	if t.onChange != nil {
		t.onChange(p)
	}
}

// FormatRemaining renders a countdown as mm:ss, clamped at zero
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
