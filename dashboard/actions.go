package dashboard

import (
	"context"

	"github.com/foodnow/foodnow-go/api"
	"github.com/foodnow/foodnow-go/core"
)

// RestaurantService is the slice of the API the owner actions need
type RestaurantService interface {
	CreateMenuItem(ctx context.Context, item api.MenuItemPayload) (*core.MenuItem, error)
	UpdateMenuItem(ctx context.Context, itemID int, item api.MenuItemPayload) (*core.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID int) error
	ToggleAvailability(ctx context.Context, itemID int) error
	MarkOrderReady(ctx context.Context, orderID int) error
}

// OrderStatusService writes order transitions
type OrderStatusService interface {
	UpdateStatus(ctx context.Context, orderID int, status core.OrderStatus) error
}

// Controller runs the owner's dashboard actions against the store and
// the backend. Every mutation follows one policy: patch the snapshot
// locally, issue the call, and roll the patch back when the call fails.
// The next poll reconciles whatever the server decided.
type Controller struct {
	store      *Store
	restaurant RestaurantService
	orders     OrderStatusService
	notifier   Notifier
	logger     core.Logger
}

// ControllerOption customizes a Controller
type ControllerOption func(*Controller)

// WithControllerLogger sets the controller's logger
func WithControllerLogger(logger core.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController wires the owner actions
func NewController(store *Store, restaurant RestaurantService, orders OrderStatusService, notifier Notifier, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:      store,
		restaurant: restaurant,
		orders:     orders,
		notifier:   notifier,
		logger:     &core.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// mutate is the shared optimistic-update path: the caller has already
// patched the store and hands over the inverse patch.
func (c *Controller) mutate(ctx context.Context, op string, rollback func(), call func(context.Context) error, successMsg, fallbackMsg string) error {
	if err := call(ctx); err != nil {
		rollback()
		c.logger.Error("Dashboard action failed", map[string]interface{}{
			"operation": op,
			"error":     err.Error(),
		})
		c.notifier.Error(core.UserMessageOf(err, fallbackMsg))
		return err
	}
	if successMsg != "" {
		c.notifier.Success(successMsg)
	}
	return nil
}

// AcceptOrder moves a new order into preparation. The pending tab
// groups PENDING and CONFIRMED together, so both are acceptable here
// even though PENDING skips the payment-confirmation edge.
func (c *Controller) AcceptOrder(ctx context.Context, orderID int) error {
	current, ok := c.store.OrderStatus(orderID)
	if !ok {
		return core.ErrNotFound
	}
	if current != core.StatusPending && current != core.StatusConfirmed {
		return core.ErrInvalidTransition
	}

	prev, _ := c.store.SetOrderStatus(orderID, core.StatusPreparing)
	return c.mutate(ctx, "dashboard.AcceptOrder",
		func() { c.store.SetOrderStatus(orderID, prev) },
		func(ctx context.Context) error {
			return c.orders.UpdateStatus(ctx, orderID, core.StatusPreparing)
		},
		"Order accepted.",
		"Could not accept the order.")
}

// RejectOrder cancels a new order and drops it from the list
func (c *Controller) RejectOrder(ctx context.Context, orderID int) error {
	current, ok := c.store.OrderStatus(orderID)
	if !ok {
		return core.ErrNotFound
	}
	if !current.CanTransitionTo(core.StatusCancelled) {
		return core.ErrInvalidTransition
	}

	removed, index, _ := c.store.RemoveOrder(orderID)
	return c.mutate(ctx, "dashboard.RejectOrder",
		func() { c.store.InsertOrder(removed, index) },
		func(ctx context.Context) error {
			return c.orders.UpdateStatus(ctx, orderID, core.StatusCancelled)
		},
		"Order rejected.",
		"Could not reject the order.")
}

// ReadyForPickup hands a prepared order to delivery. The backend
// assigns an agent; its no-agents-free message surfaces in the error
// toast.
func (c *Controller) ReadyForPickup(ctx context.Context, orderID int) error {
	current, ok := c.store.OrderStatus(orderID)
	if !ok {
		return core.ErrNotFound
	}
	if !current.CanTransitionTo(core.StatusOutForDelivery) {
		return core.ErrInvalidTransition
	}

	prev, _ := c.store.SetOrderStatus(orderID, core.StatusOutForDelivery)
	return c.mutate(ctx, "dashboard.ReadyForPickup",
		func() { c.store.SetOrderStatus(orderID, prev) },
		func(ctx context.Context) error {
			return c.restaurant.MarkOrderReady(ctx, orderID)
		},
		"Order is out for delivery.",
		"Could not hand the order to delivery.")
}

// ToggleAvailability flips a dish on or off the public menu
func (c *Controller) ToggleAvailability(ctx context.Context, itemID int) error {
	if _, ok := c.store.ToggleItemAvailability(itemID); !ok {
		return core.ErrNotFound
	}
	return c.mutate(ctx, "dashboard.ToggleAvailability",
		func() { c.store.ToggleItemAvailability(itemID) },
		func(ctx context.Context) error {
			return c.restaurant.ToggleAvailability(ctx, itemID)
		},
		"",
		"Could not update availability.")
}

// CreateMenuItem adds a dish. There is nothing to patch optimistically
// before the server assigns an id, so the snapshot picks up the created
// item from the response.
func (c *Controller) CreateMenuItem(ctx context.Context, payload api.MenuItemPayload) (*core.MenuItem, error) {
	loadingID := c.notifier.Loading("Saving menu item...")
	defer c.notifier.Remove(loadingID)

	item, err := c.restaurant.CreateMenuItem(ctx, payload)
	if err != nil {
		c.logger.Error("Dashboard action failed", map[string]interface{}{
			"operation": "dashboard.CreateMenuItem",
			"error":     err.Error(),
		})
		c.notifier.Error(core.UserMessageOf(err, "Could not save the menu item."))
		return nil, err
	}
	c.store.AppendMenuItem(*item)
	c.notifier.Success("Menu item added.")
	return item, nil
}

// UpdateMenuItem patches a dish locally, then reconciles with the
// server's copy of it.
func (c *Controller) UpdateMenuItem(ctx context.Context, itemID int, payload api.MenuItemPayload) error {
	current, ok := c.store.MenuItem(itemID)
	if !ok {
		return core.ErrNotFound
	}

	patched := current
	patched.Name = payload.Name
	patched.Description = payload.Description
	patched.Price = payload.Price
	patched.Category = payload.Category
	patched.DietaryType = payload.DietaryType
	if payload.ImageURL != "" {
		patched.ImageURL = payload.ImageURL
	}
	if payload.Available != nil {
		patched.Available = *payload.Available
	}
	prev, _ := c.store.ReplaceMenuItem(patched)

	return c.mutate(ctx, "dashboard.UpdateMenuItem",
		func() { c.store.ReplaceMenuItem(prev) },
		func(ctx context.Context) error {
			updated, err := c.restaurant.UpdateMenuItem(ctx, itemID, payload)
			if err != nil {
				return err
			}
			c.store.ReplaceMenuItem(*updated)
			return nil
		},
		"Menu item updated.",
		"Could not update the menu item.")
}

// DeleteMenuItem removes a dish. A 409 from the backend (dish on an
// open order) restores the dish and surfaces the server's message.
func (c *Controller) DeleteMenuItem(ctx context.Context, itemID int) error {
	removed, index, ok := c.store.RemoveMenuItem(itemID)
	if !ok {
		return core.ErrNotFound
	}
	return c.mutate(ctx, "dashboard.DeleteMenuItem",
		func() { c.store.InsertMenuItem(removed, index) },
		func(ctx context.Context) error {
			return c.restaurant.DeleteMenuItem(ctx, itemID)
		},
		"Menu item deleted.",
		"Could not delete the menu item.")
}
