// Package api provides typed wrappers over the FoodNow backend REST API.
// The backend is an external collaborator: these clients honor its paths
// and payload shapes as fixed contracts and surface failures through the
// core error taxonomy. No call is retried automatically.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/foodnow/foodnow-go/core"
)

// TokenSource supplies the bearer token for authenticated calls.
// Implementations live in the session package; the indirection keeps api
// free of storage concerns.
type TokenSource interface {
	// Token returns the current access token, or core.ErrNoToken when the
	// session is empty.
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource holding a fixed token. Useful in tests.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", core.ErrNoToken
	}
	return string(s), nil
}

// Client is the shared HTTP plumbing for all API groups. Create one with
// NewClient and hand it to the group constructors (NewAuthAPI, NewOrderAPI,
// ...) or use the accessor methods.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  core.Logger
}

// ClientOption customizes a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client. Use this to install
// an instrumented transport (see the telemetry package).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the client logger
func WithLogger(l core.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates the base API client.
func NewClient(cfg *core.Config, tokens TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		tokens:  tokens,
		logger:  &core.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Auth returns the authentication API group
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

// Public returns the unauthenticated browsing API group
func (c *Client) Public() *PublicAPI { return &PublicAPI{c: c} }

// Orders returns the customer order API group
func (c *Client) Orders() *OrderAPI { return &OrderAPI{c: c} }

// Restaurant returns the restaurant-owner API group
func (c *Client) Restaurant() *RestaurantAPI { return &RestaurantAPI{c: c} }

// Admin returns the administration API group
func (c *Client) Admin() *AdminAPI { return &AdminAPI{c: c} }

// Profile returns the customer profile API group
func (c *Client) Profile() *ProfileAPI { return &ProfileAPI{c: c} }

// Payments returns the payment API group
func (c *Client) Payments() *PaymentAPI { return &PaymentAPI{c: c} }

// Files returns the file upload API group
func (c *Client) Files() *FilesAPI { return &FilesAPI{c: c} }

type requestOptions struct {
	authenticated  bool
	idempotencyKey string
}

// errorBody is the backend's JSON error envelope
type errorBody struct {
	Message string `json:"message"`
}

// do issues a JSON request and decodes a JSON response into out (when out
// is non-nil and the response has a body). op names the logical operation
// for error context.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}, ro requestOptions) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return core.NewClientError(op, "encode", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return core.NewClientError(op, "request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.prepare(ctx, req, ro); err != nil {
		return err
	}

	return c.send(op, req, out)
}

// doMultipart issues a multipart/form-data request with a single file part.
func (c *Client) doMultipart(ctx context.Context, op, path, fieldName, fileName string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return core.NewClientError(op, "encode", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return core.NewClientError(op, "encode", err)
	}
	if err := writer.Close(); err != nil {
		return core.NewClientError(op, "encode", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return core.NewClientError(op, "request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := c.prepare(ctx, req, requestOptions{authenticated: true}); err != nil {
		return err
	}

	return c.send(op, req, out)
}

func (c *Client) prepare(ctx context.Context, req *http.Request, ro requestOptions) error {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if ro.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", ro.idempotencyKey)
	}
	if ro.authenticated {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) send(op string, req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("API request failed", map[string]interface{}{
			"operation": op,
			"method":    req.Method,
			"path":      req.URL.Path,
			"error":     err.Error(),
		})
		return &core.ClientError{Op: op, Kind: "transport", Err: fmt.Errorf("%w: %v", core.ErrConnectionFailed, err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("API response", map[string]interface{}{
		"operation": op,
		"method":    req.Method,
		"path":      req.URL.Path,
		"status":    resp.StatusCode,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(op, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// A few endpoints answer with plain text rather than JSON.
	if s, ok := out.(*string); ok {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &core.ClientError{Op: op, Kind: "decode", Err: fmt.Errorf("%w: %v", core.ErrBadResponse, err)}
		}
		*s = string(data)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &core.ClientError{Op: op, Kind: "decode", Err: fmt.Errorf("%w: %v", core.ErrBadResponse, err)}
	}
	return nil
}

func (c *Client) decodeError(op string, resp *http.Response) error {
	var eb errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(data) > 0 {
		_ = json.Unmarshal(data, &eb)
	}

	ce := &core.ClientError{
		Op:      op,
		Kind:    "http",
		Status:  resp.StatusCode,
		Message: eb.Message,
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		ce.Err = core.ErrUnauthorized
	case http.StatusForbidden:
		ce.Err = core.ErrForbidden
	case http.StatusNotFound:
		ce.Err = core.ErrNotFound
	case http.StatusConflict:
		ce.Err = core.ErrConflict
	default:
		ce.Err = core.ErrRequestFailed
	}
	return ce
}
