package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodnow/foodnow-go/core"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	_, err := store.Token(ctx)
	assert.True(t, errors.Is(err, core.ErrNoToken))

	require.NoError(t, store.Save(ctx, "tok-abc"))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Token(ctx)
	assert.True(t, errors.Is(err, core.ErrNoToken))

	// Clearing an empty store stays a no-op
	require.NoError(t, store.Clear(ctx))
}

// unsigned test token: header/payload/empty-signature, enough for
// ParseUnverified
func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	enc := func(v interface{}) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "." + base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestDecodeClaims(t *testing.T) {
	tests := []struct {
		name     string
		claims   map[string]interface{}
		wantRole Role
		wantHome string
	}{
		{
			name:     "admin",
			claims:   map[string]interface{}{"sub": "root@foodnow.example", "roles": []string{"ROLE_ADMIN"}},
			wantRole: RoleAdmin,
			wantHome: "/admin/applications",
		},
		{
			name:     "restaurant owner",
			claims:   map[string]interface{}{"sub": "owner@x.y", "roles": []string{"ROLE_RESTAURANT_OWNER"}},
			wantRole: RoleRestaurantOwner,
			wantHome: "/restaurant/overview",
		},
		{
			name:     "delivery personnel",
			claims:   map[string]interface{}{"sub": "rider@x.y", "roles": []string{"ROLE_DELIVERY_PERSONNEL"}},
			wantRole: RoleDeliveryPersonnel,
			wantHome: "/delivery/dashboard",
		},
		{
			name:     "customer",
			claims:   map[string]interface{}{"sub": "eater@x.y", "roles": []string{"ROLE_CUSTOMER"}},
			wantRole: RoleCustomer,
			wantHome: "/customer/dashboard",
		},
		{
			name:     "missing roles defaults to customer",
			claims:   map[string]interface{}{"sub": "eater@x.y"},
			wantRole: RoleCustomer,
			wantHome: "/customer/dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeClaims(makeToken(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, claims.Role)
			assert.Equal(t, tt.wantHome, claims.HomeRoute())
			if sub, ok := tt.claims["sub"].(string); ok {
				assert.Equal(t, sub, claims.Subject)
			}
		})
	}
}

func TestDecodeClaimsMalformed(t *testing.T) {
	_, err := DecodeClaims("not-a-jwt")
	require.Error(t, err)
}
