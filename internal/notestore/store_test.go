package notestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

func TestNew_StartsStale(t *testing.T) {
	s := New()
	assert.True(t, s.Stale())
}

func TestReplaceAll_ClearsStaleness(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Note{{ID: 1, Title: "A"}})

	assert.False(t, s.Stale())
	assert.Equal(t, 1, s.Len())
}

func TestInvalidate_MarksStaleButKeepsCache(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Note{{ID: 1, Title: "A"}})

	s.Invalidate()

	assert.True(t, s.Stale())
	assert.Equal(t, 1, s.Len(), "invalidation never wipes the cache")
}

func TestUpsert_CreateThenUpdate(t *testing.T) {
	s := New()
	s.ReplaceAll(nil)

	s.Upsert(domain.Note{ID: 5, Title: "draft"})
	s.Upsert(domain.Note{ID: 5, Title: "final", Content: "done"})

	assert.Equal(t, 1, s.Len())
	got, ok := s.Get(5)
	require.True(t, ok)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "done", got.Content)
}

func TestRemove_ReindexesRemainingNotes(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Note{{ID: 1}, {ID: 2}, {ID: 3}})

	s.Remove(2)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(2)
	assert.False(t, ok)
	got, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, int64(3), got.ID)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Note{{ID: 1}})

	s.Remove(99)

	assert.Equal(t, 1, s.Len())
}
