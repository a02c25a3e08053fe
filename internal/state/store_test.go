package state

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_MissingKey(t *testing.T) {
	s := newTestStore(t)

	value, ok, err := s.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetGetDelete_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("k", "v"))

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, s.Delete("k"))
	_, ok, err = s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete_AbsentKeyIsNotAnError(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Delete("never-set"))
}

func TestToken_Lifecycle(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	require.NoError(t, s.ClearToken())
	assert.Empty(t, s.Token())
}

func TestTheme_DefaultsThenPersists(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, DefaultTheme, s.Theme())

	require.NoError(t, s.SetTheme("light"))
	assert.Equal(t, "light", s.Theme())
}

func TestClientID_StableAcrossCalls(t *testing.T) {
	s := newTestStore(t)

	first, err := s.ClientID()
	require.NoError(t, err)
	_, parseErr := uuid.Parse(first)
	assert.NoError(t, parseErr)

	second, err := s.ClientID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
