package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

func TestPut_KeepsArrivalOrder(t *testing.T) {
	r := New()
	r.Put(domain.Tag{ID: 2, Name: "work"})
	r.Put(domain.Tag{ID: 1, Name: "home"})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "work", all[0].Name)
	assert.Equal(t, "home", all[1].Name)
}

func TestPut_DuplicateIdentifierIsGuarded(t *testing.T) {
	r := New()
	r.Put(domain.Tag{ID: 1, Name: "work"})
	r.Put(domain.Tag{ID: 1, Name: "work"}) // double-fired create

	assert.Equal(t, 1, r.Len())
}

func TestRename_InPlaceWithoutIdentifierChange(t *testing.T) {
	r := New()
	r.ReplaceAll([]domain.Tag{{ID: 1, Name: "work"}, {ID: 2, Name: "home"}})

	r.Rename(1, "job")

	got, ok := r.Get(1)
	require.True(t, ok)
	assert.Equal(t, "job", got.Name)
	assert.Equal(t, int64(1), got.ID)

	all := r.All()
	assert.Equal(t, "job", all[0].Name, "arrival position preserved")
}

func TestRemove_ReindexesRemainingTags(t *testing.T) {
	r := New()
	r.ReplaceAll([]domain.Tag{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}})

	r.Remove(2)

	assert.Equal(t, 2, r.Len())
	_, ok := r.Get(2)
	assert.False(t, ok)

	got, ok := r.Get(3)
	require.True(t, ok)
	assert.Equal(t, "c", got.Name)
}

func TestResolve_OmitsUnknownIdentifiers(t *testing.T) {
	r := New()
	r.ReplaceAll([]domain.Tag{{ID: 1, Name: "a"}, {ID: 3, Name: "c"}})

	resolved := r.Resolve([]int64{1, 2, 3})

	require.Len(t, resolved, 2)
	assert.Equal(t, "a", resolved[0].Name)
	assert.Equal(t, "c", resolved[1].Name)
}

func TestReplaceAll_DoesNotAliasCallerSlice(t *testing.T) {
	tags := []domain.Tag{{ID: 1, Name: "a"}}
	r := New()
	r.ReplaceAll(tags)

	tags[0].Name = "mutated"

	got, _ := r.Get(1)
	assert.Equal(t, "a", got.Name)
}
