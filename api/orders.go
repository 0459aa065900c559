package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/foodnow/foodnow-go/core"
)

// OrderAPI wraps the customer-facing order endpoints
type OrderAPI struct {
	c *Client
}

// NewOrderAPI creates the group from a base client
func NewOrderAPI(c *Client) *OrderAPI { return &OrderAPI{c: c} }

// ReviewPayload is the body for SubmitReview
type ReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// MyOrders returns the caller's order history
func (o *OrderAPI) MyOrders(ctx context.Context) ([]core.Order, error) {
	var out []core.Order
	err := o.c.do(ctx, "orders.MyOrders", http.MethodGet, "/orders/my-orders", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches a single order owned by the caller
func (o *OrderAPI) Order(ctx context.Context, orderID int) (*core.Order, error) {
	var out core.Order
	path := fmt.Sprintf("/orders/my-orders/%d", orderID)
	err := o.c.do(ctx, "orders.Order", http.MethodGet, path, nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder creates an order from the caller's server-side cart. The
// request carries an idempotency key so a network-level replay cannot
// create a duplicate order.
func (o *OrderAPI) PlaceOrder(ctx context.Context) (*core.Order, error) {
	var out core.Order
	ro := requestOptions{authenticated: true, idempotencyKey: uuid.NewString()}
	err := o.c.do(ctx, "orders.PlaceOrder", http.MethodPost, "/orders", nil, &out, ro)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitReview attaches a review to a delivered order
func (o *OrderAPI) SubmitReview(ctx context.Context, orderID int, review ReviewPayload) error {
	path := fmt.Sprintf("/orders/%d/review", orderID)
	return o.c.do(ctx, "orders.SubmitReview", http.MethodPost, path, review, nil, requestOptions{authenticated: true})
}

// UpdateStatus transitions an order to the given status. The backend
// treats a repeat of the current status as a no-op, which the tracking
// package relies on when its countdown and the server race to mark an
// order delivered.
func (o *OrderAPI) UpdateStatus(ctx context.Context, orderID int, status core.OrderStatus) error {
	if !core.ValidStatus(status) {
		return core.NewClientError("orders.UpdateStatus", "order", core.ErrInvalidTransition)
	}
	path := fmt.Sprintf("/manage/orders/%d/status", orderID)
	body := map[string]core.OrderStatus{"status": status}
	return o.c.do(ctx, "orders.UpdateStatus", http.MethodPatch, path, body, nil, requestOptions{authenticated: true})
}
