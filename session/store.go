// Package session persists the access token issued at login and decodes
// the role claims the UI needs for routing. The API client reads the
// token through the api.TokenSource interface; a missing token surfaces
// as core.ErrNoToken, which callers translate into a redirect to login.
package session

import (
	"context"
	"sync"

	"github.com/foodnow/foodnow-go/core"
)

// TokenStore persists the access token across calls. Implementations
// must be safe for concurrent use.
type TokenStore interface {
	// Save stores the token, replacing any previous one
	Save(ctx context.Context, token string) error

	// Token returns the stored token or core.ErrNoToken
	Token(ctx context.Context) (string, error)

	// Clear removes the token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps the token in process memory. This is the
// default: it matches the lifetime of a browser tab, resetting on
// restart.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore creates an empty in-memory store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Save stores the token
func (m *MemoryTokenStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Token returns the stored token or core.ErrNoToken
func (m *MemoryTokenStore) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", core.ErrNoToken
	}
	return m.token, nil
}

// Clear removes the token
func (m *MemoryTokenStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
