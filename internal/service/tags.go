package service

import (
	"context"
	"log/slog"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/notestore"
	"github.com/foreskyapp/foresky-cli/internal/registry"
)

// TagService keeps the tag registry consistent with the remote store.
// Every mutation that can change how a note displays its tags also
// invalidates the note cache, which is what guarantees a rename never
// leaves a stale label on screen.
type TagService struct {
	gw       Gateway
	registry *registry.Registry
	notes    *notestore.Store
	logger   *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(gw Gateway, reg *registry.Registry, notes *notestore.Store, logger *slog.Logger) *TagService {
	return &TagService{
		gw:       gw,
		registry: reg,
		notes:    notes,
		logger:   logger,
	}
}

// List fetches the user's tags and refreshes the registry. On fetch
// failure the previous cache is kept and returned alongside the error,
// so the caller can show a retryable message over stale-but-usable data.
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.gw.ListTags(ctx)
	if err != nil {
		s.logger.Warn("tag fetch failed, keeping cached tags", "cached", s.registry.Len(), "error", err)
		return s.registry.All(), err
	}
	s.registry.ReplaceAll(tags)
	return s.registry.All(), nil
}

// Cached returns the registry contents without a remote call.
func (s *TagService) Cached() []domain.Tag {
	return s.registry.All()
}

// Create makes a new tag. A blank name never reaches the server; a
// duplicate name comes back from it as a conflict.
func (s *TagService) Create(ctx context.Context, rawName string) (*domain.Tag, error) {
	name := domain.NormalizeTagName(rawName)
	if name == "" {
		return nil, errors.Validation("tag name must not be empty")
	}

	tag, err := s.gw.CreateTag(ctx, name)
	if err != nil {
		return nil, err
	}

	s.registry.Put(*tag)
	s.logger.Info("tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

// Rename changes a tag's name in place. The identifier is untouched,
// and the note cache is invalidated so the new label reaches every
// note that references the tag.
func (s *TagService) Rename(ctx context.Context, id int64, rawName string) (*domain.Tag, error) {
	name := domain.NormalizeTagName(rawName)
	if name == "" {
		return nil, errors.Validation("tag name must not be empty")
	}

	tag, err := s.gw.UpdateTag(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.registry.Rename(tag.ID, tag.Name)
	s.notes.Invalidate()
	s.logger.Info("tag renamed", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

// Delete removes a tag. The server refuses while notes still reference
// it; that conflict detail is passed through verbatim.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	if err := s.gw.DeleteTag(ctx, id); err != nil {
		return err
	}

	s.registry.Remove(id)
	s.notes.Invalidate()
	s.logger.Info("tag deleted", "tag_id", id)
	return nil
}

// Resolve maps tag identifiers to registry entries, omitting unknowns.
func (s *TagService) Resolve(ids []int64) []domain.Tag {
	return s.registry.Resolve(ids)
}

// FindByName returns the cached tag with the given (normalized) name.
func (s *TagService) FindByName(rawName string) (domain.Tag, bool) {
	name := domain.NormalizeTagName(rawName)
	for _, t := range s.registry.All() {
		if t.Name == name {
			return t, true
		}
	}
	return domain.Tag{}, false
}
