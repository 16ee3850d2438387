package session

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/quizhost/quizhost/internal/dependencies/clock"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/game"
	"github.com/quizhost/quizhost/internal/services/scoring"
	"github.com/quizhost/quizhost/internal/storage"
)

// Controller owns the per-guild session registry: it maps each guild to
// its single active game and holds the history of finished ones. Every
// operation is addressed to a guild explicitly; there is no ambient
// "current game" global.
type Controller struct {
	storage        storage.Storage
	gameController *game.Controller
	scoringService *scoring.Service
	clock          clock.Clock
	logger         *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	gameController *game.Controller,
	scoringService *scoring.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		gameController: gameController,
		scoringService: scoringService,
		clock:          clock,
		logger:         logger,
	}
}

// CreateGame creates a game for the guild. At most one game is active per
// guild; a second create fails with ErrGameInProgress until the first is
// ended.
func (c *Controller) CreateGame(ctx context.Context, guildID model.GuildID, cfg *model.GameConfig) (*model.Game, error) {
	sess, err := c.getOrCreateSession(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if sess.CurrentGame != nil {
		return nil, model.ErrGameInProgress
	}

	g, err := c.gameController.CreateGame(ctx, guildID, cfg)
	if err != nil {
		return nil, err
	}

	sess.CurrentGame = &g.ID
	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	return g, nil
}

// CreateGameFromPack builds a configuration document from a stored
// question pack and creates the game from it. Categories come from the
// pack in sorted order, so the board layout is deterministic.
func (c *Controller) CreateGameFromPack(ctx context.Context, guildID model.GuildID, packName, gameName, description string, teams []string, perCategory int) (*model.Game, error) {
	pack, err := c.storage.GetPack(ctx, packName)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(pack.Categories))
	for cat := range pack.Categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	cfg := &model.GameConfig{
		Game: model.GameInfo{
			Name:        gameName,
			Description: description,
			Teams:       teams,
			Categories:  categories,
			PerCategory: perCategory,
		},
		Questions: pack.Categories,
	}

	return c.CreateGame(ctx, guildID, cfg)
}

// CurrentGame resolves the guild's active game
func (c *Controller) CurrentGame(ctx context.Context, guildID model.GuildID) (*model.Game, error) {
	sess, err := c.storage.GetSession(ctx, guildID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.ErrNoActiveGame
		}
		return nil, err
	}

	if sess.CurrentGame == nil {
		return nil, model.ErrNoActiveGame
	}

	return c.gameController.GetGame(ctx, *sess.CurrentGame)
}

// EndGame ends the guild's active game, records its summary in the session
// history, and frees the guild for a new game
func (c *Controller) EndGame(ctx context.Context, guildID model.GuildID) (*model.GameSummary, error) {
	sess, err := c.storage.GetSession(ctx, guildID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.ErrNoActiveGame
		}
		return nil, err
	}

	if sess.CurrentGame == nil {
		return nil, model.ErrNoActiveGame
	}

	g, err := c.gameController.EndGame(ctx, *sess.CurrentGame)
	if err != nil {
		return nil, err
	}

	summary := c.scoringService.Summarize(g, *g.EndedAt)

	sess.History = append(sess.History, *summary)
	sess.CurrentGame = nil
	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("session game ended",
		slog.String("guild_id", string(guildID)),
		slog.String("game_id", string(summary.GameID)),
		slog.Int("history_length", len(sess.History)),
	)

	return summary, nil
}

// History returns the guild's finished-game summaries, oldest first
func (c *Controller) History(ctx context.Context, guildID model.GuildID) ([]model.GameSummary, error) {
	sess, err := c.storage.GetSession(ctx, guildID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return []model.GameSummary{}, nil
		}
		return nil, err
	}
	return sess.History, nil
}

func (c *Controller) getOrCreateSession(ctx context.Context, guildID model.GuildID) (*model.GuildSession, error) {
	sess, err := c.storage.GetSession(ctx, guildID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, model.ErrSessionNotFound) {
		return nil, err
	}

	now := c.clock.Now()
	sess = &model.GuildSession{
		GuildID:   guildID,
		History:   []model.GameSummary{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
