package api

import (
	"context"
	"net/http"

	"github.com/foodnow/foodnow-go/core"
)

// ProfileAPI wraps the signed-in customer's /profile endpoints
type ProfileAPI struct {
	c *Client
}

// NewProfileAPI creates the group from a base client
func NewProfileAPI(c *Client) *ProfileAPI { return &ProfileAPI{c: c} }

// Profile fetches the caller's account profile
func (p *ProfileAPI) Profile(ctx context.Context) (*core.UserProfile, error) {
	var out core.UserProfile
	err := p.c.do(ctx, "profile.Profile", http.MethodGet, "/profile", nil, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the caller's profile. New profile images go
// through Files().Upload first; the returned path lands in
// ProfileImageURL here.
func (p *ProfileAPI) UpdateProfile(ctx context.Context, profile core.UserProfile) (*core.UserProfile, error) {
	var out core.UserProfile
	err := p.c.do(ctx, "profile.UpdateProfile", http.MethodPut, "/profile", profile, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
