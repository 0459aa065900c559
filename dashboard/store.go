// Package dashboard keeps a restaurant owner's view of orders, menu and
// reviews fresh: a snapshot store fed by a fixed-interval poller, plus
// optimistic mutations for the owner's actions.
package dashboard

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/foodnow/foodnow-go/core"
)

// Store owns the current dashboard snapshot. All mutation goes through
// methods; readers get copies. A fresh poll replaces the snapshot
// wholesale, there is no merge.
type Store struct {
	mu   sync.RWMutex
	snap core.DashboardSnapshot
	set  bool
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Loaded reports whether at least one snapshot has been stored
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// Replace swaps in a freshly fetched snapshot, last fetch wins
func (s *Store) Replace(snap core.DashboardSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.set = true
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() core.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snap)
}

func copySnapshot(snap core.DashboardSnapshot) core.DashboardSnapshot {
	out := snap
	out.Orders = append([]core.Order(nil), snap.Orders...)
	out.Menu = append([]core.MenuItem(nil), snap.Menu...)
	out.Reviews = append([]core.Review(nil), snap.Reviews...)
	return out
}

// PendingCount counts orders awaiting restaurant action
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.PendingCount()
}

// OrderStatus reads one order's current status
func (s *Store) OrderStatus(orderID int) (core.OrderStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.snap.Orders {
		if o.ID == orderID {
			return o.Status, true
		}
	}
	return "", false
}

// SetOrderStatus patches one order's status in place and returns the
// previous status for rollback.
func (s *Store) SetOrderStatus(orderID int, status core.OrderStatus) (core.OrderStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Orders {
		if s.snap.Orders[i].ID == orderID {
			prev := s.snap.Orders[i].Status
			s.snap.Orders[i].Status = status
			return prev, true
		}
	}
	return "", false
}

// RemoveOrder deletes an order and returns it with its position so a
// failed call can put it back.
func (s *Store) RemoveOrder(orderID int) (core.Order, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.snap.Orders {
		if o.ID == orderID {
			s.snap.Orders = append(s.snap.Orders[:i], s.snap.Orders[i+1:]...)
			return o, i, true
		}
	}
	return core.Order{}, 0, false
}

// InsertOrder restores an order at a position, clamped to the list
func (s *Store) InsertOrder(order core.Order, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(s.snap.Orders) {
		index = len(s.snap.Orders)
	}
	s.snap.Orders = append(s.snap.Orders[:index], append([]core.Order{order}, s.snap.Orders[index:]...)...)
}

// ToggleItemAvailability flips a dish's availability and returns the
// new value.
func (s *Store) ToggleItemAvailability(itemID int) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Menu {
		if s.snap.Menu[i].ID == itemID {
			s.snap.Menu[i].Available = !s.snap.Menu[i].Available
			return s.snap.Menu[i].Available, true
		}
	}
	return false, false
}

// ItemAvailability reads a dish's availability flag
func (s *Store) ItemAvailability(itemID int) (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.snap.Menu {
		if item.ID == itemID {
			return item.Available, true
		}
	}
	return false, false
}

// MenuItem reads a dish by id
func (s *Store) MenuItem(itemID int) (core.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.snap.Menu {
		if item.ID == itemID {
			return item, true
		}
	}
	return core.MenuItem{}, false
}

// AppendMenuItem adds a dish returned by the server
func (s *Store) AppendMenuItem(item core.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Menu = append(s.snap.Menu, item)
}

// ReplaceMenuItem swaps a dish by id and returns the previous value for
// rollback.
func (s *Store) ReplaceMenuItem(item core.MenuItem) (core.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Menu {
		if s.snap.Menu[i].ID == item.ID {
			prev := s.snap.Menu[i]
			s.snap.Menu[i] = item
			return prev, true
		}
	}
	return core.MenuItem{}, false
}

// RemoveMenuItem deletes a dish and returns it with its position
func (s *Store) RemoveMenuItem(itemID int) (core.MenuItem, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.snap.Menu {
		if item.ID == itemID {
			s.snap.Menu = append(s.snap.Menu[:i], s.snap.Menu[i+1:]...)
			return item, i, true
		}
	}
	return core.MenuItem{}, 0, false
}

// InsertMenuItem restores a dish at a position, clamped to the list
func (s *Store) InsertMenuItem(item core.MenuItem, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(s.snap.Menu) {
		index = len(s.snap.Menu)
	}
	s.snap.Menu = append(s.snap.Menu[:index], append([]core.MenuItem{item}, s.snap.Menu[index:]...)...)
}

// OrderCounts groups the order list by stage. Pending includes
// CONFIRMED: payment confirmation happens without the restaurant, so
// both read as new work.
type OrderCounts struct {
	Pending        int
	Preparing      int
	OutForDelivery int
	Delivered      int
	Cancelled      int
}

// OrderCounts tallies the current order list by stage
func (s *Store) OrderCounts() OrderCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var c OrderCounts
	for _, o := range s.snap.Orders {
		switch o.Status {
		case core.StatusPending, core.StatusConfirmed:
			c.Pending++
		case core.StatusPreparing:
			c.Preparing++
		case core.StatusOutForDelivery:
			c.OutForDelivery++
		case core.StatusDelivered:
			c.Delivered++
		case core.StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

// PrepLine is one dish the kitchen currently owes, summed across every
// PREPARING order.
type PrepLine struct {
	ItemName string
	Quantity int
}

// KitchenPrepSummary aggregates item quantities across PREPARING
// orders, busiest dish first. Ties break alphabetically so the list is
// stable between polls.
func (s *Store) KitchenPrepSummary() []PrepLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)
	for _, o := range s.snap.Orders {
		if o.Status != core.StatusPreparing {
			continue
		}
		for _, item := range o.Items {
			totals[item.ItemName] += item.Quantity
		}
	}

	lines := make([]PrepLine, 0, len(totals))
	for name, qty := range totals {
		lines = append(lines, PrepLine{ItemName: name, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Quantity != lines[j].Quantity {
			return lines[i].Quantity > lines[j].Quantity
		}
		return lines[i].ItemName < lines[j].ItemName
	})
	return lines
}

// TotalRevenue sums the value of DELIVERED orders
func (s *Store) TotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, o := range s.snap.Orders {
		if o.Status == core.StatusDelivered {
			total += o.TotalPrice
		}
	}
	return total
}

// TimeSince renders the age of an order for the order cards
func TimeSince(orderTime, now time.Time) string {
	elapsed := now.Sub(orderTime)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d min ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(elapsed.Hours()))
	default:
		days := int(elapsed.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
