package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodnow/foodnow-go/api"
	"github.com/foodnow/foodnow-go/core"
)

type fakeRestaurantService struct {
	createResult *core.MenuItem
	updateResult *core.MenuItem
	err          error

	toggled []int
	readied []int
	deleted []int
}

func (f *fakeRestaurantService) CreateMenuItem(ctx context.Context, item api.MenuItemPayload) (*core.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.createResult, nil
}

func (f *fakeRestaurantService) UpdateMenuItem(ctx context.Context, itemID int, item api.MenuItemPayload) (*core.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.updateResult, nil
}

func (f *fakeRestaurantService) DeleteMenuItem(ctx context.Context, itemID int) error {
	f.deleted = append(f.deleted, itemID)
	return f.err
}

func (f *fakeRestaurantService) ToggleAvailability(ctx context.Context, itemID int) error {
	f.toggled = append(f.toggled, itemID)
	return f.err
}

func (f *fakeRestaurantService) MarkOrderReady(ctx context.Context, orderID int) error {
	f.readied = append(f.readied, orderID)
	return f.err
}

type fakeOrderStatusService struct {
	err     error
	updates []core.OrderStatus
}

func (f *fakeOrderStatusService) UpdateStatus(ctx context.Context, orderID int, status core.OrderStatus) error {
	f.updates = append(f.updates, status)
	return f.err
}

func newTestController(restaurant *fakeRestaurantService, orders *fakeOrderStatusService) (*Controller, *Store, *fakeNotifier) {
	store := NewStore()
	store.Replace(sampleSnapshot())
	notifier := &fakeNotifier{}
	return NewController(store, restaurant, orders, notifier), store, notifier
}

func TestAcceptOrderOptimisticSuccess(t *testing.T) {
	orders := &fakeOrderStatusService{}
	controller, store, notifier := newTestController(&fakeRestaurantService{}, orders)

	require.NoError(t, controller.AcceptOrder(context.Background(), 101))

	status, _ := store.OrderStatus(101)
	assert.Equal(t, core.StatusPreparing, status)
	assert.Equal(t, []core.OrderStatus{core.StatusPreparing}, orders.updates)
	assert.Equal(t, []string{"Order accepted."}, notifier.successMessages())
}

func TestAcceptOrderRollsBackOnFailure(t *testing.T) {
	orders := &fakeOrderStatusService{err: core.ErrConnectionFailed}
	controller, store, notifier := newTestController(&fakeRestaurantService{}, orders)

	err := controller.AcceptOrder(context.Background(), 101)
	require.Error(t, err)

	status, _ := store.OrderStatus(101)
	assert.Equal(t, core.StatusPending, status, "optimistic patch must be reverted")
	assert.Len(t, notifier.errorMessages(), 1)
	assert.Empty(t, notifier.successMessages())
}

func TestAcceptOrderFromEitherPendingState(t *testing.T) {
	orders := &fakeOrderStatusService{}
	controller, store, _ := newTestController(&fakeRestaurantService{}, orders)

	// 101 is PENDING, 102 is CONFIRMED; the pending tab offers accept
	// on both.
	require.NoError(t, controller.AcceptOrder(context.Background(), 101))
	require.NoError(t, controller.AcceptOrder(context.Background(), 102))

	for _, id := range []int{101, 102} {
		status, _ := store.OrderStatus(id)
		assert.Equal(t, core.StatusPreparing, status)
	}
	assert.Equal(t, []core.OrderStatus{core.StatusPreparing, core.StatusPreparing}, orders.updates)

	// Anything already in the kitchen or beyond is not acceptable.
	err := controller.AcceptOrder(context.Background(), 103)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestAcceptOrderInvalidTransition(t *testing.T) {
	orders := &fakeOrderStatusService{}
	controller, _, _ := newTestController(&fakeRestaurantService{}, orders)

	// 105 is DELIVERED, terminal.
	err := controller.AcceptOrder(context.Background(), 105)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
	assert.Empty(t, orders.updates, "guard fires before any network call")

	err = controller.AcceptOrder(context.Background(), 999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRejectOrderRemovesThenRestoresOnFailure(t *testing.T) {
	orders := &fakeOrderStatusService{}
	controller, store, _ := newTestController(&fakeRestaurantService{}, orders)

	require.NoError(t, controller.RejectOrder(context.Background(), 101))
	_, ok := store.OrderStatus(101)
	assert.False(t, ok, "rejected order leaves the list")
	assert.Equal(t, []core.OrderStatus{core.StatusCancelled}, orders.updates)

	orders.err = core.ErrConnectionFailed
	require.Error(t, controller.RejectOrder(context.Background(), 102))
	status, ok := store.OrderStatus(102)
	require.True(t, ok, "failed rejection puts the order back")
	assert.Equal(t, core.StatusConfirmed, status)
}

func TestReadyForPickup(t *testing.T) {
	restaurant := &fakeRestaurantService{}
	controller, store, _ := newTestController(restaurant, &fakeOrderStatusService{})

	require.NoError(t, controller.ReadyForPickup(context.Background(), 103))
	status, _ := store.OrderStatus(103)
	assert.Equal(t, core.StatusOutForDelivery, status)
	assert.Equal(t, []int{103}, restaurant.readied)

	// A PENDING order cannot skip straight to delivery.
	err := controller.ReadyForPickup(context.Background(), 101)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestReadyForPickupNoAgentsRollsBack(t *testing.T) {
	restaurant := &fakeRestaurantService{
		err: core.NewClientError("restaurant.MarkOrderReady", "order", core.ErrNoDeliveryAgents),
	}
	controller, store, notifier := newTestController(restaurant, &fakeOrderStatusService{})

	require.Error(t, controller.ReadyForPickup(context.Background(), 104))
	status, _ := store.OrderStatus(104)
	assert.Equal(t, core.StatusPreparing, status)
	assert.Len(t, notifier.errorMessages(), 1)
}

func TestToggleAvailabilityRollsBackOnFailure(t *testing.T) {
	restaurant := &fakeRestaurantService{err: core.ErrConnectionFailed}
	controller, store, notifier := newTestController(restaurant, &fakeOrderStatusService{})

	before, _ := store.ItemAvailability(11)
	require.Error(t, controller.ToggleAvailability(context.Background(), 11))
	after, _ := store.ItemAvailability(11)

	assert.Equal(t, before, after, "availability flips back to its pre-toggle value")
	assert.Len(t, notifier.errorMessages(), 1)
}

func TestToggleAvailabilitySuccess(t *testing.T) {
	restaurant := &fakeRestaurantService{}
	controller, store, notifier := newTestController(restaurant, &fakeOrderStatusService{})

	require.NoError(t, controller.ToggleAvailability(context.Background(), 11))
	available, _ := store.ItemAvailability(11)
	assert.False(t, available)
	assert.Equal(t, []int{11}, restaurant.toggled)
	assert.Empty(t, notifier.successMessages(), "silent on success")
}

func TestCreateMenuItemAppendsServerCopy(t *testing.T) {
	restaurant := &fakeRestaurantService{
		createResult: &core.MenuItem{ID: 13, Name: "Calzone", Available: true},
	}
	controller, store, notifier := newTestController(restaurant, &fakeOrderStatusService{})

	item, err := controller.CreateMenuItem(context.Background(), api.MenuItemPayload{Name: "Calzone"})
	require.NoError(t, err)
	assert.Equal(t, 13, item.ID)

	menu := store.Snapshot().Menu
	assert.Equal(t, "Calzone", menu[len(menu)-1].Name)
	assert.Equal(t, []string{"Menu item added."}, notifier.successMessages())
	assert.Len(t, notifier.removed, 1, "loading toast removed")
}

func TestUpdateMenuItemReconcilesAndRollsBack(t *testing.T) {
	restaurant := &fakeRestaurantService{
		updateResult: &core.MenuItem{ID: 11, Name: "Margherita DOP", Price: 14, Available: true},
	}
	controller, store, _ := newTestController(restaurant, &fakeOrderStatusService{})

	payload := api.MenuItemPayload{Name: "Margherita DOP", Price: 14}
	require.NoError(t, controller.UpdateMenuItem(context.Background(), 11, payload))
	item, _ := store.MenuItem(11)
	assert.Equal(t, "Margherita DOP", item.Name)

	restaurant.err = core.ErrConnectionFailed
	require.Error(t, controller.UpdateMenuItem(context.Background(), 11, api.MenuItemPayload{Name: "Broken"}))
	item, _ = store.MenuItem(11)
	assert.Equal(t, "Margherita DOP", item.Name, "failed update restores the previous dish")
}

func TestDeleteMenuItemRestoresOnConflict(t *testing.T) {
	restaurant := &fakeRestaurantService{}
	controller, store, _ := newTestController(restaurant, &fakeOrderStatusService{})

	require.NoError(t, controller.DeleteMenuItem(context.Background(), 12))
	_, ok := store.MenuItem(12)
	assert.False(t, ok)

	restaurant.err = &core.ClientError{
		Op:      "restaurant.DeleteMenuItem",
		Kind:    "menu",
		Status:  409,
		Message: "Dish is part of an active order.",
		Err:     core.ErrConflict,
	}
	require.Error(t, controller.DeleteMenuItem(context.Background(), 11))
	_, ok = store.MenuItem(11)
	assert.True(t, ok, "conflicting delete puts the dish back")
}
