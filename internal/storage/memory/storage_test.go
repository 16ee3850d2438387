package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/storage/memory"
)

func TestSessions(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.GetSession(ctx, "guild-1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	sess := &model.GuildSession{GuildID: "guild-1", History: []model.GameSummary{}}
	require.NoError(t, store.SaveSession(ctx, sess))

	got, err := store.GetSession(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, sess.GuildID, got.GuildID)

	require.NoError(t, store.DeleteSession(ctx, "guild-1"))
	_, err = store.GetSession(ctx, "guild-1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestGames(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.GetGame(ctx, "GAME1")
	assert.ErrorIs(t, err, model.ErrGameNotFound)

	game := &model.Game{ID: "GAME1", GuildID: "guild-1", State: model.GameStateConfigured}
	require.NoError(t, store.SaveGame(ctx, game))

	got, err := store.GetGame(ctx, "GAME1")
	require.NoError(t, err)
	assert.Equal(t, game.ID, got.ID)

	require.NoError(t, store.DeleteGame(ctx, "GAME1"))
	_, err = store.GetGame(ctx, "GAME1")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestHosts(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.GetHost(ctx, "h_1")
	assert.ErrorIs(t, err, model.ErrHostNotFound)
	_, err = store.GetHostByUsername(ctx, "quizmaster")
	assert.ErrorIs(t, err, model.ErrHostNotFound)

	host := &model.Host{ID: "h_1", Username: "quizmaster", PasswordHash: "hash"}
	require.NoError(t, store.SaveHost(ctx, host))

	byID, err := store.GetHost(ctx, "h_1")
	require.NoError(t, err)
	assert.Equal(t, "quizmaster", byID.Username)

	byName, err := store.GetHostByUsername(ctx, "quizmaster")
	require.NoError(t, err)
	assert.Equal(t, model.HostID("h_1"), byName.ID)
}

func TestPacks(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.GetPack(ctx, "general")
	assert.ErrorIs(t, err, model.ErrPackNotFound)

	for _, name := range []string{"zeta", "alpha"} {
		require.NoError(t, store.SavePack(ctx, &model.QuestionPack{Name: name}))
	}

	names, err := store.ListPacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	require.NoError(t, store.DeletePack(ctx, "zeta"))
	names, err = store.ListPacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, names)
}
