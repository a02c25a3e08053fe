package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// tagInput is the write payload for tags.
type tagInput struct {
	Name string `json:"name"`
}

// ListTags fetches all tags belonging to the current user.
func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := c.do(ctx, "listTags", http.MethodGet, "/tags/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTag creates a tag. A duplicate name comes back as a conflict.
func (c *Client) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	var out domain.Tag
	if err := c.do(ctx, "createTag", http.MethodPost, "/tags/", nil, tagInput{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTag renames a tag. The identifier never changes.
func (c *Client) UpdateTag(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	var out domain.Tag
	if err := c.do(ctx, "updateTag", http.MethodPut, "/tags/"+strconv.FormatInt(id, 10), nil, tagInput{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTag removes a tag. The server refuses with a conflict detail
// while notes still reference it; that detail is surfaced verbatim.
func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.do(ctx, "deleteTag", http.MethodDelete, "/tags/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
