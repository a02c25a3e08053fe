package gateway

import (
	"context"
	"net/http"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "me", http.MethodGet, "/users/me/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the server-computed aggregate counts.
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := c.do(ctx, "stats", http.MethodGet, "/users/me/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping is the liveness probe. The response body carries nothing the
// client needs; failures are the caller's to ignore.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/ping", nil, nil, nil)
}
