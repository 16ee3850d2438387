package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/storage/bolt"
)

func newTestStorage(t *testing.T) *bolt.Storage {
	t.Helper()

	store, err := bolt.New(filepath.Join(t.TempDir(), "quizhost.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestGameRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	q, err := model.NewQuestion("History", "Q1", "A1", 100)
	require.NoError(t, err)
	require.NoError(t, q.MarkAnswered())

	game := &model.Game{
		ID:         "GAME1",
		GuildID:    "guild-1",
		State:      model.GameStateStarted,
		Teams:      []*model.Team{{Name: "Red", Score: -50}},
		Categories: []string{"History"},
		Questions:  []*model.Question{q},
		Buzzes:     map[model.QuestionID][]string{},
	}
	require.NoError(t, store.SaveGame(ctx, game))

	got, err := store.GetGame(ctx, "GAME1")
	require.NoError(t, err)
	assert.Equal(t, -50, got.TeamByName("Red").Score)
	assert.Equal(t, model.Board{"History": {model.AnsweredMask}}, got.Board())

	require.NoError(t, store.DeleteGame(ctx, "GAME1"))
	_, err = store.GetGame(ctx, "GAME1")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestSessions(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetSession(ctx, "guild-1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	require.NoError(t, store.SaveSession(ctx, &model.GuildSession{GuildID: "guild-1"}))

	got, err := store.GetSession(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, model.GuildID("guild-1"), got.GuildID)
}

func TestHosts(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	host := &model.Host{ID: "h_1", Username: "quizmaster", PasswordHash: "hash"}
	require.NoError(t, store.SaveHost(ctx, host))

	byName, err := store.GetHostByUsername(ctx, "quizmaster")
	require.NoError(t, err)
	assert.Equal(t, model.HostID("h_1"), byName.ID)

	_, err = store.GetHostByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrHostNotFound)
}

func TestPacks(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha"} {
		require.NoError(t, store.SavePack(ctx, &model.QuestionPack{Name: name}))
	}

	names, err := store.ListPacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	require.NoError(t, store.DeletePack(ctx, "alpha"))
	_, err = store.GetPack(ctx, "alpha")
	assert.ErrorIs(t, err, model.ErrPackNotFound)
}

// Data survives closing and reopening the database file
func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizhost.db")
	ctx := context.Background()

	store, err := bolt.New(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveGame(ctx, &model.Game{ID: "GAME1", GuildID: "guild-1"}))
	require.NoError(t, store.Close())

	reopened, err := bolt.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetGame(ctx, "GAME1")
	require.NoError(t, err)
	assert.Equal(t, model.GuildID("guild-1"), got.GuildID)
}
