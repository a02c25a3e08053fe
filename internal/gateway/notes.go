package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// NoteInput is the write payload for notes. Updates are full replace:
// title, content, and the tag set are discarded wholesale, not merged.
type NoteInput struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	TagIDs  []int64 `json:"tag_ids"`
}

// ListNotes fetches the entire note collection for the current user.
func (c *Client) ListNotes(ctx context.Context) ([]domain.Note, error) {
	var out []domain.Note
	if err := c.do(ctx, "listNotes", http.MethodGet, "/users/me/notes/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNote creates a note and returns the server's version of it,
// identifier included.
func (c *Client) CreateNote(ctx context.Context, input NoteInput) (*domain.Note, error) {
	if input.TagIDs == nil {
		input.TagIDs = []int64{}
	}
	var out domain.Note
	if err := c.do(ctx, "createNote", http.MethodPost, "/users/me/notes/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote replaces a note's title, content, and tag set.
func (c *Client) UpdateNote(ctx context.Context, id int64, input NoteInput) (*domain.Note, error) {
	if input.TagIDs == nil {
		input.TagIDs = []int64{}
	}
	var out domain.Note
	if err := c.do(ctx, "updateNote", http.MethodPut, "/users/me/notes/"+strconv.FormatInt(id, 10), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote removes a note. Irreversible; confirmation is the UI
// layer's responsibility.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, "deleteNote", http.MethodDelete, "/users/me/notes/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
