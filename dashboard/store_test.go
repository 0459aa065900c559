package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodnow/foodnow-go/core"
)

func sampleSnapshot() core.DashboardSnapshot {
	return core.DashboardSnapshot{
		RestaurantProfile: core.RestaurantProfile{ID: 1, Name: "Pizza Palace"},
		Orders: []core.Order{
			{ID: 101, Status: core.StatusPending, TotalPrice: 18.50},
			{ID: 102, Status: core.StatusConfirmed, TotalPrice: 9.00},
			{ID: 103, Status: core.StatusPreparing, TotalPrice: 31.00, Items: []core.OrderItem{
				{ItemName: "Margherita", Quantity: 2},
				{ItemName: "Tiramisu", Quantity: 1},
			}},
			{ID: 104, Status: core.StatusPreparing, TotalPrice: 12.00, Items: []core.OrderItem{
				{ItemName: "Margherita", Quantity: 1},
			}},
			{ID: 105, Status: core.StatusDelivered, TotalPrice: 22.00},
			{ID: 106, Status: core.StatusDelivered, TotalPrice: 8.00},
			{ID: 107, Status: core.StatusCancelled, TotalPrice: 40.00},
		},
		Menu: []core.MenuItem{
			{ID: 11, Name: "Margherita", Available: true},
			{ID: 12, Name: "Tiramisu", Available: false},
		},
	}
}

func TestStoreReplaceAndSnapshot(t *testing.T) {
	store := NewStore()
	assert.False(t, store.Loaded())
	assert.Equal(t, 0, store.PendingCount())

	store.Replace(sampleSnapshot())
	assert.True(t, store.Loaded())
	assert.Equal(t, 2, store.PendingCount())

	// Snapshot copies do not alias the store.
	snap := store.Snapshot()
	snap.Orders[0].Status = core.StatusCancelled
	fresh := store.Snapshot()
	assert.Equal(t, core.StatusPending, fresh.Orders[0].Status)
}

func TestStoreOrderCounts(t *testing.T) {
	store := NewStore()
	store.Replace(sampleSnapshot())

	counts := store.OrderCounts()
	assert.Equal(t, 2, counts.Pending, "PENDING and CONFIRMED group together")
	assert.Equal(t, 2, counts.Preparing)
	assert.Equal(t, 0, counts.OutForDelivery)
	assert.Equal(t, 2, counts.Delivered)
	assert.Equal(t, 1, counts.Cancelled)
}

func TestStoreKitchenPrepSummary(t *testing.T) {
	store := NewStore()
	store.Replace(sampleSnapshot())

	lines := store.KitchenPrepSummary()
	require.Len(t, lines, 2)
	assert.Equal(t, PrepLine{ItemName: "Margherita", Quantity: 3}, lines[0])
	assert.Equal(t, PrepLine{ItemName: "Tiramisu", Quantity: 1}, lines[1])
}

func TestStoreTotalRevenue(t *testing.T) {
	store := NewStore()
	store.Replace(sampleSnapshot())

	// Delivered orders only; cancelled and open orders never count.
	assert.InDelta(t, 30.00, store.TotalRevenue(), 0.001)
}

func TestStoreOrderMutations(t *testing.T) {
	store := NewStore()
	store.Replace(sampleSnapshot())

	prev, ok := store.SetOrderStatus(101, core.StatusPreparing)
	require.True(t, ok)
	assert.Equal(t, core.StatusPending, prev)
	status, _ := store.OrderStatus(101)
	assert.Equal(t, core.StatusPreparing, status)

	_, ok = store.SetOrderStatus(999, core.StatusPreparing)
	assert.False(t, ok)

	removed, index, ok := store.RemoveOrder(102)
	require.True(t, ok)
	assert.Equal(t, 102, removed.ID)
	assert.Equal(t, 1, index)
	_, ok = store.OrderStatus(102)
	assert.False(t, ok)

	store.InsertOrder(removed, index)
	snap := store.Snapshot()
	assert.Equal(t, 102, snap.Orders[1].ID)
}

func TestStoreMenuMutations(t *testing.T) {
	store := NewStore()
	store.Replace(sampleSnapshot())

	available, ok := store.ToggleItemAvailability(11)
	require.True(t, ok)
	assert.False(t, available)

	item, ok := store.MenuItem(11)
	require.True(t, ok)
	assert.False(t, item.Available)

	item.Name = "Margherita Speciale"
	prev, ok := store.ReplaceMenuItem(item)
	require.True(t, ok)
	assert.Equal(t, "Margherita", prev.Name)

	removed, index, ok := store.RemoveMenuItem(12)
	require.True(t, ok)
	assert.Equal(t, "Tiramisu", removed.Name)
	store.InsertMenuItem(removed, index)
	assert.Equal(t, "Tiramisu", store.Snapshot().Menu[1].Name)

	store.AppendMenuItem(core.MenuItem{ID: 13, Name: "Calzone"})
	assert.Len(t, store.Snapshot().Menu, 3)
}

func TestTimeSince(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{30 * time.Second, "Just now"},
		{5 * time.Minute, "5 min ago"},
		{90 * time.Minute, "1 hr ago"},
		{5 * time.Hour, "5 hr ago"},
		{25 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeSince(now.Add(-tt.elapsed), now))
	}
}
