package api

import (
	"context"
	"net/http"
)

// AuthAPI wraps the /auth endpoints. All of them are unauthenticated.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI creates the group from a base client
func NewAuthAPI(c *Client) *AuthAPI { return &AuthAPI{c: c} }

// Credentials is the login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Registration is the sign-up request body
type Registration struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address,omitempty"`
}

// Login exchanges credentials for an access token. The caller is
// responsible for persisting the token in the session store.
func (a *AuthAPI) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	err := a.c.do(ctx, "auth.Login", http.MethodPost, "/auth/login", creds, &out, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a customer account. The backend answers with a plain
// text confirmation message.
func (a *AuthAPI) Register(ctx context.Context, reg Registration) (string, error) {
	var msg string
	err := a.c.do(ctx, "auth.Register", http.MethodPost, "/auth/register", reg, &msg, requestOptions{})
	return msg, err
}

// ForgotPassword requests a reset link for the given email
func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var out struct {
		ResetLink string `json:"resetLink"`
	}
	err := a.c.do(ctx, "auth.ForgotPassword", http.MethodPost, "/auth/forgot-password", body, &out, requestOptions{})
	if err != nil {
		return "", err
	}
	return out.ResetLink, nil
}

// ResetPassword consumes a reset token and sets a new password
func (a *AuthAPI) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	body := map[string]string{"token": token, "newPassword": newPassword}
	var msg string
	err := a.c.do(ctx, "auth.ResetPassword", http.MethodPost, "/auth/reset-password", body, &msg, requestOptions{})
	return msg, err
}
