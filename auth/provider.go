// Package auth holds the session credential provider: the bearer token and
// the identity decoded from its claims. Token refresh and storage live
// outside this module; callers push new tokens in and subscribe to changes.
package auth

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"social-sync/domain"
)

type Provider struct {
	mu        sync.Mutex
	token     string
	identity  domain.Identity
	listeners []func()
}

func NewProvider() *Provider {
	return &Provider{}
}

// SetToken stores a new bearer token, decodes the identity claims and
// notifies listeners. The signature is not verified here: the token was
// issued to us and is only decoded for display fields.
func (p *Provider) SetToken(token string) {
	identity := identityFromClaims(token)

	p.mu.Lock()
	p.token = token
	p.identity = identity
	listeners := append([]func(){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Clear drops the token and identity, as on logout.
func (p *Provider) Clear() {
	p.mu.Lock()
	p.token = ""
	p.identity = domain.Identity{}
	listeners := append([]func(){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (p *Provider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

func (p *Provider) Identity() (domain.Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identity, p.identity.Valid()
}

func (p *Provider) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func identityFromClaims(token string) domain.Identity {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.Identity{}
	}

	id := stringClaim(claims, "sub")
	if id == "" {
		id = stringClaim(claims, "user_id")
	}
	name := stringClaim(claims, "full_name")
	if name == "" {
		name = stringClaim(claims, "name")
	}
	return domain.Identity{
		ID:       id,
		Username: stringClaim(claims, "username"),
		FullName: name,
		Avatar:   stringClaim(claims, "avatar"),
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
