package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestProvider_SetToken(t *testing.T) {
	req := require.New(t)
	provider := NewProvider()

	_, ok := provider.Identity()
	req.False(ok)

	token := signedToken(t, jwt.MapClaims{
		"sub":       "u1",
		"username":  "alice",
		"full_name": "Alice Smith",
		"avatar":    "https://cdn.example.com/alice.png",
	})
	provider.SetToken(token)

	req.Equal(token, provider.Token())
	identity, ok := provider.Identity()
	req.True(ok)
	req.Equal("u1", identity.ID)
	req.Equal("alice", identity.Username)
	req.Equal("Alice Smith", identity.FullName)
}

func TestProvider_ClaimFallbacks(t *testing.T) {
	req := require.New(t)
	provider := NewProvider()

	token := signedToken(t, jwt.MapClaims{
		"user_id": "u2",
		"name":    "Bob Jones",
	})
	provider.SetToken(token)

	identity, ok := provider.Identity()
	req.True(ok)
	req.Equal("u2", identity.ID)
	req.Equal("Bob Jones", identity.FullName)
}

func TestProvider_GarbageToken(t *testing.T) {
	req := require.New(t)
	provider := NewProvider()

	provider.SetToken("not-a-jwt")

	req.Equal("not-a-jwt", provider.Token())
	_, ok := provider.Identity()
	req.False(ok)
}

func TestProvider_OnChange(t *testing.T) {
	req := require.New(t)
	provider := NewProvider()

	calls := 0
	provider.OnChange(func() { calls++ })

	provider.SetToken(signedToken(t, jwt.MapClaims{"sub": "u1"}))
	provider.Clear()

	req.Equal(2, calls)
	req.Empty(provider.Token())
	_, ok := provider.Identity()
	req.False(ok)
}
