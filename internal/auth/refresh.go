package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// refreshBuffer refreshes tokens this long before their stated expiry
const refreshBuffer = 60 * time.Second

// TokenSource wraps oauth2.TokenSource with persistence.
// It automatically refreshes tokens and calls onRefresh when a new token is
// obtained, so stored credentials never go stale.
type TokenSource struct {
	config    *oauth2.Config
	token     *oauth2.Token
	onRefresh func(*oauth2.Token) error
	mu        sync.Mutex
}

// NewTokenSource creates a TokenSource that refreshes tokens as needed and
// calls onRefresh to persist new ones
func NewTokenSource(cfg *oauth2.Config, token *oauth2.Token, onRefresh func(*oauth2.Token) error) *TokenSource {
	return &TokenSource{
		config:    cfg,
		token:     token,
		onRefresh: onRefresh,
	}
}

// Token returns a valid token, refreshing if necessary
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if time.Until(ts.token.Expiry) > refreshBuffer {
		return ts.token, nil
	}

	ctx := context.Background()
	src := ts.config.TokenSource(ctx, ts.token)
	newToken, err := src.Token()
	if err != nil {
		return nil, err
	}

	if ts.onRefresh != nil {
		if err := ts.onRefresh(newToken); err != nil {
			return nil, err
		}
	}

	ts.token = newToken
	return newToken, nil
}

// IsExpired checks if the current token is expired or about to expire
func (ts *TokenSource) IsExpired() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return time.Until(ts.token.Expiry) <= refreshBuffer
}

// CurrentToken returns the current token without refreshing
func (ts *TokenSource) CurrentToken() *oauth2.Token {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token
}
