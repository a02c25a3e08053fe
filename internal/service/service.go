// Package service orchestrates the sync engine: it drives the remote
// gateway, keeps the local caches consistent on every mutation, and
// enforces the pre-flight validation and cache-invalidation rules.
package service

import (
	"context"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
)

// Gateway is the remote capability the services depend on. The
// concrete implementation is gateway.Client; tests substitute fakes.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (*domain.User, error)
	ResendVerification(ctx context.Context, email string) error
	Verify(ctx context.Context, token string) (string, error)

	Me(ctx context.Context) (*domain.User, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	Ping(ctx context.Context) error

	ListNotes(ctx context.Context) ([]domain.Note, error)
	CreateNote(ctx context.Context, input gateway.NoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, id int64, input gateway.NoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, name string) (*domain.Tag, error)
	UpdateTag(ctx context.Context, id int64, name string) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}
