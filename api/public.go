package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foodnow/foodnow-go/core"
)

// PublicAPI wraps the unauthenticated /public browsing endpoints
type PublicAPI struct {
	c *Client
}

// NewPublicAPI creates the group from a base client
func NewPublicAPI(c *Client) *PublicAPI { return &PublicAPI{c: c} }

// ListRestaurants fetches every approved restaurant with its menu
func (p *PublicAPI) ListRestaurants(ctx context.Context) ([]core.Restaurant, error) {
	var out []core.Restaurant
	err := p.c.do(ctx, "public.ListRestaurants", http.MethodGet, "/public/restaurants", nil, &out, requestOptions{})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RestaurantMenu fetches one restaurant with its full menu
func (p *PublicAPI) RestaurantMenu(ctx context.Context, restaurantID int) (*core.Restaurant, error) {
	var out core.Restaurant
	path := fmt.Sprintf("/public/restaurants/%d/menu", restaurantID)
	err := p.c.do(ctx, "public.RestaurantMenu", http.MethodGet, path, nil, &out, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
