package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foodnow/foodnow-go/core"
)

// AdminAPI wraps the /admin endpoints. Every call requires a token with
// the admin role; the backend enforces this with 403.
type AdminAPI struct {
	c *Client
}

// NewAdminAPI creates the group from a base client
func NewAdminAPI(c *Client) *AdminAPI { return &AdminAPI{c: c} }

// NewAgent is the body for CreateDeliveryAgent
type NewAgent struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// PendingApplications lists restaurant applications awaiting review
func (a *AdminAPI) PendingApplications(ctx context.Context) ([]core.PendingApplication, error) {
	var out []core.PendingApplication
	err := a.c.do(ctx, "admin.PendingApplications", http.MethodGet, "/admin/applications/pending", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveApplication turns an application into a live restaurant
func (a *AdminAPI) ApproveApplication(ctx context.Context, applicationID int) error {
	path := fmt.Sprintf("/admin/applications/%d/approve", applicationID)
	return a.c.do(ctx, "admin.ApproveApplication", http.MethodPost, path, struct{}{}, nil, requestOptions{authenticated: true})
}

// RejectApplication declines an application with a reason shown to the
// applicant
func (a *AdminAPI) RejectApplication(ctx context.Context, applicationID int, reason string) error {
	path := fmt.Sprintf("/admin/applications/%d/reject", applicationID)
	body := map[string]string{"reason": reason}
	return a.c.do(ctx, "admin.RejectApplication", http.MethodPost, path, body, nil, requestOptions{authenticated: true})
}

// Restaurants lists every restaurant on the platform
func (a *AdminAPI) Restaurants(ctx context.Context) ([]core.AdminRestaurant, error) {
	var out []core.AdminRestaurant
	err := a.c.do(ctx, "admin.Restaurants", http.MethodGet, "/admin/restaurants", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Users lists every account
func (a *AdminAPI) Users(ctx context.Context) ([]core.AdminUser, error) {
	var out []core.AdminUser
	err := a.c.do(ctx, "admin.Users", http.MethodGet, "/admin/users", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Orders lists every order across restaurants
func (a *AdminAPI) Orders(ctx context.Context) ([]core.AdminOrder, error) {
	var out []core.AdminOrder
	err := a.c.do(ctx, "admin.Orders", http.MethodGet, "/admin/orders", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeliveryAgents lists the delivery personnel roster
func (a *AdminAPI) DeliveryAgents(ctx context.Context) ([]core.DeliveryAgent, error) {
	var out []core.DeliveryAgent
	err := a.c.do(ctx, "admin.DeliveryAgents", http.MethodGet, "/admin/delivery-agents", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDeliveryAgent provisions a delivery personnel account
func (a *AdminAPI) CreateDeliveryAgent(ctx context.Context, agent NewAgent) (*core.DeliveryAgent, error) {
	var out core.DeliveryAgent
	err := a.c.do(ctx, "admin.CreateDeliveryAgent", http.MethodPost, "/admin/delivery-personnel", agent, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
