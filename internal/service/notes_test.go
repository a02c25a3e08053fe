package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/draft"
	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
	"github.com/foreskyapp/foresky-cli/internal/notestore"
	"github.com/foreskyapp/foresky-cli/internal/view"
)

func newNoteService(gw Gateway) (*NoteService, *notestore.Store) {
	store := notestore.New()
	return NewNoteService(gw, store, draft.NewEditor(), discardLogger()), store
}

func sampleNotes() []domain.Note {
	return []domain.Note{
		{ID: 1, Title: "Standup notes", Content: "blockers", Tags: []domain.Tag{{ID: 1, Name: "work"}}},
		{ID: 2, Title: "Groceries", Content: "milk, eggs", Tags: []domain.Tag{{ID: 2, Name: "home"}}},
		{ID: 3, Title: "Reading list", Content: "novels"},
	}
}

func TestNoteServiceListCaches(t *testing.T) {
	gw := &fakeGateway{
		listNotesFn: func() ([]domain.Note, error) { return sampleNotes(), nil },
	}
	svc, _ := newNoteService(gw)

	notes, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, notes, 3)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gw.listNotesCalls, "a fresh cache must not re-fetch")
}

func TestNoteServiceListRefetchesAfterInvalidate(t *testing.T) {
	gw := &fakeGateway{
		listNotesFn: func() ([]domain.Note, error) { return sampleNotes(), nil },
	}
	svc, store := newNoteService(gw)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	store.Invalidate()
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, gw.listNotesCalls)
}

func TestNoteServiceListFailureKeepsCache(t *testing.T) {
	calls := 0
	gw := &fakeGateway{
		listNotesFn: func() ([]domain.Note, error) {
			calls++
			if calls == 1 {
				return sampleNotes(), nil
			}
			return nil, errors.Unavailable("service unavailable")
		},
	}
	svc, store := newNoteService(gw)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	store.Invalidate()
	notes, err := svc.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnavailable))
	assert.Len(t, notes, 3, "stale data stays available behind the error")
}

func TestNoteServiceSearch(t *testing.T) {
	gw := &fakeGateway{
		listNotesFn: func() ([]domain.Note, error) { return sampleNotes(), nil },
	}
	svc, _ := newNoteService(gw)

	t.Run("query narrows by tag name", func(t *testing.T) {
		notes, err := svc.Search(context.Background(), "work", view.SortNewest)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, int64(1), notes[0].ID)
	})

	t.Run("default order is newest first", func(t *testing.T) {
		notes, err := svc.Search(context.Background(), "", view.SortNewest)
		require.NoError(t, err)
		require.Len(t, notes, 3)
		assert.Equal(t, int64(3), notes[0].ID)
	})

	t.Run("unknown order is rejected", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "", view.SortOrder("sideways"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrValidation))
	})
}

func TestNoteServiceGet(t *testing.T) {
	gw := &fakeGateway{
		listNotesFn: func() ([]domain.Note, error) { return sampleNotes(), nil },
	}
	svc, _ := newNoteService(gw)

	note, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", note.Title)

	_, err = svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestNoteServiceCreate(t *testing.T) {
	var got gateway.NoteInput
	gw := &fakeGateway{
		createNoteFn: func(input gateway.NoteInput) (*domain.Note, error) {
			got = input
			return &domain.Note{ID: 10, Title: input.Title, Content: input.Content}, nil
		},
	}
	svc, store := newNoteService(gw)
	store.ReplaceAll(nil)

	note, err := svc.Create(context.Background(), "Trip plan", "pack light", []int64{2, 5})
	require.NoError(t, err)
	assert.Equal(t, int64(10), note.ID)
	assert.Equal(t, []int64{2, 5}, got.TagIDs)

	_, ok := store.Get(10)
	assert.True(t, ok, "the created note lands in the cache")
}

func TestNoteServiceCreateEmptyTitle(t *testing.T) {
	called := false
	gw := &fakeGateway{
		createNoteFn: func(input gateway.NoteInput) (*domain.Note, error) {
			called = true
			return nil, nil
		},
	}
	svc, _ := newNoteService(gw)

	_, err := svc.Create(context.Background(), "   ", "body", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.False(t, called)
}

func TestNoteServiceUpdateVanishedNote(t *testing.T) {
	gw := &fakeGateway{
		updateNoteFn: func(id int64, input gateway.NoteInput) (*domain.Note, error) {
			return nil, errors.NotFound("Note not found")
		},
	}
	svc, store := newNoteService(gw)
	store.ReplaceAll(sampleNotes())

	_, err := svc.Update(context.Background(), 1, "Standup notes", "blockers", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	// The cached copy no longer matches the server; force a re-fetch.
	assert.True(t, store.Stale())
}

func TestNoteServiceDelete(t *testing.T) {
	gw := &fakeGateway{}
	svc, store := newNoteService(gw)
	store.ReplaceAll(sampleNotes())

	require.NoError(t, svc.Delete(context.Background(), 2))

	_, ok := store.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, store.Len())
	assert.False(t, store.Stale())
}

func TestNoteServiceSubmitDraftEdit(t *testing.T) {
	var got gateway.NoteInput
	var gotID int64
	gw := &fakeGateway{
		updateNoteFn: func(id int64, input gateway.NoteInput) (*domain.Note, error) {
			gotID = id
			got = input
			return &domain.Note{ID: id, Title: input.Title, Content: input.Content}, nil
		},
	}
	svc, store := newNoteService(gw)
	original := domain.Note{
		ID:      4,
		Title:   "Standup notes",
		Content: "blockers",
		Tags:    []domain.Tag{{ID: 1, Name: "work"}},
	}
	store.ReplaceAll([]domain.Note{original})

	// Only the tag set changes; title and content ride along untouched.
	ed := svc.Editor()
	ed.BeginEdit(original)
	ed.ToggleTag(1)
	ed.ToggleTag(3)

	note, err := svc.SubmitDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), note.ID)
	assert.Equal(t, int64(4), gotID)
	assert.Equal(t, "Standup notes", got.Title)
	assert.Equal(t, "blockers", got.Content)
	assert.Equal(t, []int64{3}, got.TagIDs)

	assert.False(t, ed.Active(), "a committed draft is gone")
}

func TestNoteServiceSubmitDraftCompose(t *testing.T) {
	gw := &fakeGateway{
		createNoteFn: func(input gateway.NoteInput) (*domain.Note, error) {
			return &domain.Note{ID: 11, Title: input.Title, Content: input.Content}, nil
		},
	}
	svc, store := newNoteService(gw)
	store.ReplaceAll(nil)

	ed := svc.Editor()
	ed.Begin()
	ed.SetTitle("Trip plan")
	ed.SetContent("pack light")
	ed.ToggleTag(2)

	note, err := svc.SubmitDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(11), note.ID)
	assert.False(t, ed.Active())

	_, ok := store.Get(11)
	assert.True(t, ok)
}

func TestNoteServiceSubmitDraftFailureKeepsDraft(t *testing.T) {
	gw := &fakeGateway{
		createNoteFn: func(input gateway.NoteInput) (*domain.Note, error) {
			return nil, errors.Unavailable("service unavailable")
		},
	}
	svc, _ := newNoteService(gw)

	ed := svc.Editor()
	ed.Begin()
	ed.SetTitle("Trip plan")

	_, err := svc.SubmitDraft(context.Background())
	require.Error(t, err)
	// The user's work survives the failed submit for a retry.
	assert.True(t, ed.Active())
	d, ok := ed.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "Trip plan", d.Title)
}

func TestNoteServiceCancelDraft(t *testing.T) {
	svc, _ := newNoteService(&fakeGateway{})

	ed := svc.Editor()
	ed.Begin()
	ed.SetTitle("scratch")

	svc.CancelDraft()
	assert.False(t, ed.Active())
}
