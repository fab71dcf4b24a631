package gameapi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckyroad/casinohub/internal/gameapi"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestSessionStoreRoundTrip(t *testing.T) {
	path := sessionPath(t)

	store, err := gameapi.NewFileSessionStore(path)
	require.NoError(t, err)
	assert.Nil(t, store.Get())
	assert.Empty(t, store.Token())

	session := &gameapi.Session{
		Token: "tok123",
		User:  gameapi.SessionUser{ID: "u1", Name: "alice", Email: "alice@example.com", Balance: 50},
	}
	require.NoError(t, store.Set(session))

	assert.Equal(t, "tok123", store.Token())
	assert.Equal(t, "alice", store.Get().User.Name)

	// A fresh store picks the session up from disk
	reloaded, err := gameapi.NewFileSessionStore(path)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Get())
	assert.Equal(t, "tok123", reloaded.Token())
	assert.Equal(t, 50.0, reloaded.Get().User.Balance)
}

func TestSessionStoreClear(t *testing.T) {
	path := sessionPath(t)

	store, err := gameapi.NewFileSessionStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(&gameapi.Session{Token: "tok123"}))
	require.NoError(t, store.Clear())

	assert.Nil(t, store.Get())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing an already-empty store is fine
	require.NoError(t, store.Clear())
}

func TestSessionStoreNotifiesSubscribers(t *testing.T) {
	store, err := gameapi.NewFileSessionStore(sessionPath(t))
	require.NoError(t, err)

	var transitions []*gameapi.Session
	store.OnChange(func(s *gameapi.Session) {
		transitions = append(transitions, s)
	})

	require.NoError(t, store.Set(&gameapi.Session{Token: "first"}))
	require.NoError(t, store.Set(&gameapi.Session{Token: "second"}))
	require.NoError(t, store.Clear())

	require.Len(t, transitions, 3)
	assert.Equal(t, "first", transitions[0].Token)
	assert.Equal(t, "second", transitions[1].Token)
	assert.Nil(t, transitions[2])
}

func TestSessionStoreIgnoresCorruptFile(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store, err := gameapi.NewFileSessionStore(path)
	require.NoError(t, err)
	assert.Nil(t, store.Get())
}
