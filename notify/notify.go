// Package notify implements the process-wide toast queue: an ordered,
// in-memory collection of transient user-facing messages, newest first.
// Nothing is persisted; the queue resets with the process.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a toast
type Kind string

const (
	// KindSuccess is the default style
	KindSuccess Kind = "success"

	// KindError marks failures
	KindError Kind = "error"

	// KindLoading marks in-progress work; loading toasts never expire on
	// their own and must be removed explicitly
	KindLoading Kind = "loading"
)

// Toast is a single transient notification
type Toast struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// DefaultDuration is how long a toast stays visible when the caller
// passes no explicit duration
const DefaultDuration = 4 * time.Second

// Service owns the toast queue. It is safe for concurrent use: pollers,
// trackers and direct UI actions all emit toasts.
type Service struct {
	mu         sync.Mutex
	toasts     []Toast
	lastID     int64
	timers     map[int64]*time.Timer
	defaultFor time.Duration

	// afterFunc schedules the auto-removal; replaced in tests
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// ServiceOption customizes a Service
type ServiceOption func(*Service)

// WithDefaultDuration overrides how long non-loading toasts stay up
func WithDefaultDuration(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.defaultFor = d
		}
	}
}

// NewService creates an empty toast queue
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		timers:     make(map[int64]*time.Timer),
		defaultFor: DefaultDuration,
		afterFunc:  time.AfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show adds a toast at the head of the queue and returns its id. The
// toast removes itself after d, unless its kind is KindLoading; a zero d
// means the service default.
func (s *Service) Show(message string, kind Kind, d time.Duration) int64 {
	if d <= 0 {
		d = s.defaultFor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	id := s.lastID
	s.toasts = append([]Toast{{ID: id, Message: message, Kind: kind}}, s.toasts...)

	if kind != KindLoading {
		s.timers[id] = s.afterFunc(d, func() { s.Remove(id) })
	}
	return id
}

// Success shows a success toast with the default duration
func (s *Service) Success(message string) int64 {
	return s.Show(message, KindSuccess, 0)
}

// Error shows an error toast with the default duration
func (s *Service) Error(message string) int64 {
	return s.Show(message, KindError, 0)
}

// Loading shows a toast that stays until removed
func (s *Service) Loading(message string) int64 {
	return s.Show(message, KindLoading, 0)
}

// Remove deletes a toast by id. Removing an absent id is a no-op.
func (s *Service) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns a snapshot of the queue, newest first
func (s *Service) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Clear drops every toast and cancels pending expirations
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}
