package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the authorization role carried in the access token
type Role string

const (
	RoleCustomer          Role = "ROLE_CUSTOMER"
	RoleRestaurantOwner   Role = "ROLE_RESTAURANT_OWNER"
	RoleAdmin             Role = "ROLE_ADMIN"
	RoleDeliveryPersonnel Role = "ROLE_DELIVERY_PERSONNEL"
)

// Claims is the decoded subset of the access token the UI cares about
type Claims struct {
	Subject string
	Role    Role
}

// DecodeClaims extracts subject and role from the access token without
// verifying the signature. Verification is the backend's job; the token
// here only steers client-side routing, and the backend re-checks the
// role on every call.
func DecodeClaims(token string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed access token: %w", err)
	}

	out := &Claims{Role: RoleCustomer}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if roles, ok := claims["roles"].([]interface{}); ok && len(roles) > 0 {
		if role, ok := roles[0].(string); ok && role != "" {
			out.Role = Role(role)
		}
	}
	return out, nil
}

// HomeRoute maps a role to the landing route after login, mirroring the
// role-based navigation of the web frontends.
func (c *Claims) HomeRoute() string {
	switch c.Role {
	case RoleAdmin:
		return "/admin/applications"
	case RoleRestaurantOwner:
		return "/restaurant/overview"
	case RoleDeliveryPersonnel:
		return "/delivery/dashboard"
	default:
		return "/customer/dashboard"
	}
}
