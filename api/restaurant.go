package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/foodnow/foodnow-go/core"
)

// RestaurantAPI wraps the restaurant-owner endpoints: the dashboard
// snapshot, menu CRUD, order handoff, and partnership applications.
type RestaurantAPI struct {
	c *Client
}

// NewRestaurantAPI creates the group from a base client
func NewRestaurantAPI(c *Client) *RestaurantAPI { return &RestaurantAPI{c: c} }

// MenuItemPayload is the create/update body for menu items
type MenuItemPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	DietaryType string  `json:"dietaryType"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// Application is the partnership application body
type Application struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	BusinessID     string `json:"businessId"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// Dashboard fetches the full owner snapshot: profile, orders, menu and
// reviews in one round trip. Polling callers replace their previous
// snapshot with the result wholesale.
func (r *RestaurantAPI) Dashboard(ctx context.Context) (*core.DashboardSnapshot, error) {
	var out core.DashboardSnapshot
	err := r.c.do(ctx, "restaurant.Dashboard", http.MethodGet, "/restaurant/dashboard", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMenuItem adds a dish to the menu
func (r *RestaurantAPI) CreateMenuItem(ctx context.Context, item MenuItemPayload) (*core.MenuItem, error) {
	var out core.MenuItem
	err := r.c.do(ctx, "restaurant.CreateMenuItem", http.MethodPost, "/restaurant/menu", item, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem replaces a dish's fields
func (r *RestaurantAPI) UpdateMenuItem(ctx context.Context, itemID int, item MenuItemPayload) (*core.MenuItem, error) {
	var out core.MenuItem
	path := fmt.Sprintf("/restaurant/menu/%d", itemID)
	err := r.c.do(ctx, "restaurant.UpdateMenuItem", http.MethodPut, path, item, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes a dish. The backend answers 409 with a message
// when the dish is referenced by open orders.
func (r *RestaurantAPI) DeleteMenuItem(ctx context.Context, itemID int) error {
	path := fmt.Sprintf("/restaurant/menu/%d", itemID)
	return r.c.do(ctx, "restaurant.DeleteMenuItem", http.MethodDelete, path, nil, nil, requestOptions{authenticated: true})
}

// ToggleAvailability flips a dish's availability flag server-side
func (r *RestaurantAPI) ToggleAvailability(ctx context.Context, itemID int) error {
	path := fmt.Sprintf("/restaurant/menu/%d/availability", itemID)
	return r.c.do(ctx, "restaurant.ToggleAvailability", http.MethodPatch, path, nil, nil, requestOptions{authenticated: true})
}

// MarkOrderReady hands a PREPARING order to delivery. The backend assigns
// an agent and moves the order to OUT_FOR_DELIVERY; with no agents free it
// answers an error message that belongs in a toast.
func (r *RestaurantAPI) MarkOrderReady(ctx context.Context, orderID int) error {
	path := fmt.Sprintf("/restaurant/orders/%d/ready", orderID)
	return r.c.do(ctx, "restaurant.MarkOrderReady", http.MethodPost, path, struct{}{}, nil, requestOptions{authenticated: true})
}

// Apply submits a partnership application for admin review
func (r *RestaurantAPI) Apply(ctx context.Context, app Application) error {
	return r.c.do(ctx, "restaurant.Apply", http.MethodPost, "/restaurant/apply", app, nil, requestOptions{authenticated: true})
}

// UploadProfileImage replaces the restaurant's profile image
func (r *RestaurantAPI) UploadProfileImage(ctx context.Context, fileName string, file io.Reader) (*core.Restaurant, error) {
	var out core.Restaurant
	err := r.c.doMultipart(ctx, "restaurant.UploadProfileImage", "/restaurant/profile/upload-image", "file", fileName, file, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
