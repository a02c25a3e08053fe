package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/draft"
	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
	"github.com/foreskyapp/foresky-cli/internal/notestore"
	"github.com/foreskyapp/foresky-cli/internal/view"
)

// NoteService keeps the note cache consistent with the remote store
// and derives the projected views from it.
//
// Two racing updates to the same note are not sequenced here: the last
// response to arrive wins, exactly as the remote store resolves them.
type NoteService struct {
	gw     Gateway
	store  *notestore.Store
	editor *draft.Editor
	logger *slog.Logger
}

// NewNoteService creates a new note service.
func NewNoteService(gw Gateway, store *notestore.Store, editor *draft.Editor, logger *slog.Logger) *NoteService {
	return &NoteService{
		gw:     gw,
		store:  store,
		editor: editor,
		logger: logger,
	}
}

// List returns the user's notes, fetching from the server when the
// cache is stale (first use, or after a tag mutation). A failed fetch
// keeps and returns the previous cache alongside the error.
func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	if s.store.Stale() {
		if err := s.refresh(ctx); err != nil {
			return s.store.All(), err
		}
	}
	return s.store.All(), nil
}

// Refresh forces a re-fetch regardless of staleness.
func (s *NoteService) Refresh(ctx context.Context) ([]domain.Note, error) {
	if err := s.refresh(ctx); err != nil {
		return s.store.All(), err
	}
	return s.store.All(), nil
}

func (s *NoteService) refresh(ctx context.Context) error {
	notes, err := s.gw.ListNotes(ctx)
	if err != nil {
		s.logger.Warn("note fetch failed, keeping cached notes", "cached", s.store.Len(), "error", err)
		return err
	}
	s.store.ReplaceAll(notes)
	return nil
}

// Search projects the current notes through the query and sort order.
// The projection is recomputed from the cache on every call.
func (s *NoteService) Search(ctx context.Context, query string, order view.SortOrder) ([]domain.Note, error) {
	if !order.Valid() {
		return nil, errors.Validationf("unknown sort order %q", order)
	}
	notes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Project(notes, query, order), nil
}

// Get returns a single cached note, fetching first if needed.
func (s *NoteService) Get(ctx context.Context, id int64) (domain.Note, error) {
	if _, err := s.List(ctx); err != nil {
		return domain.Note{}, err
	}
	note, ok := s.store.Get(id)
	if !ok {
		return domain.Note{}, errors.NotFoundf("note %d not found", id)
	}
	return note, nil
}

// Create makes a new note. Unknown tag identifiers are passed through
// as-is; the server is the authority on what they mean.
func (s *NoteService) Create(ctx context.Context, title, content string, tagIDs []int64) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.Validation("note title must not be empty")
	}

	note, err := s.gw.CreateNote(ctx, gateway.NoteInput{Title: title, Content: content, TagIDs: tagIDs})
	if err != nil {
		return nil, err
	}

	s.store.Upsert(*note)
	s.logger.Info("note created", "note_id", note.ID)
	return note, nil
}

// Update replaces a note's title, content, and tag set wholesale. When
// the note has vanished server-side, the cache entry is suspect too,
// so the whole cache is marked for re-fetch.
func (s *NoteService) Update(ctx context.Context, id int64, title, content string, tagIDs []int64) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.Validation("note title must not be empty")
	}

	note, err := s.gw.UpdateNote(ctx, id, gateway.NoteInput{Title: title, Content: content, TagIDs: tagIDs})
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			s.store.Invalidate()
		}
		return nil, err
	}

	s.store.Upsert(*note)
	s.logger.Info("note updated", "note_id", note.ID)
	return note, nil
}

// Delete removes a note. Confirmation happens in the UI layer; by the
// time this runs the decision is final.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	if err := s.gw.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			s.store.Invalidate()
		}
		return err
	}

	s.store.Remove(id)
	s.logger.Info("note deleted", "note_id", id)
	return nil
}

// SubmitDraft commits the active draft: create when composing, update
// when editing. On success the draft is cleared entirely, backing
// identifier included, so it can never be resubmitted stale.
func (s *NoteService) SubmitDraft(ctx context.Context) (*domain.Note, error) {
	d, ok := s.editor.Snapshot()
	if !ok {
		return nil, errors.Internal("no draft in progress")
	}

	var (
		note *domain.Note
		err  error
	)
	if d.Editing {
		note, err = s.Update(ctx, d.NoteID, d.Title, d.Content, d.TagIDs)
	} else {
		note, err = s.Create(ctx, d.Title, d.Content, d.TagIDs)
	}
	if err != nil {
		return nil, err
	}

	s.editor.Clear()
	return note, nil
}

// CancelDraft discards the active draft without touching the store.
func (s *NoteService) CancelDraft() {
	s.editor.Clear()
}

// Editor exposes the draft editor to the UI layer.
func (s *NoteService) Editor() *draft.Editor {
	return s.editor
}
