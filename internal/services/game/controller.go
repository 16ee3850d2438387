package game

import (
	"context"
	"log/slog"

	"github.com/quizhost/quizhost/internal/dependencies/clock"
	"github.com/quizhost/quizhost/internal/dependencies/random"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/presenter"
	"github.com/quizhost/quizhost/internal/storage"
)

const (
	// GameIDLength is the length of generated game identifiers
	GameIDLength = 12
	// GameIDAlphabet is the characters used in game identifiers (avoid confusing chars)
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller manages the game state machine: lifecycle transitions,
// enrollment, team balancing, and the question show/buzz/answer/score flow.
// Mutations are synchronous; the caller (the bot's event dispatch) is
// responsible for serializing calls per guild.
type Controller struct {
	storage   storage.Storage
	presenter presenter.Presenter
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	presenter presenter.Presenter,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		presenter: presenter,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// CreateGame builds a game for a guild from its configuration document.
// Teams come from config.game.teams; the flat question list is built by
// iterating config.questions[category] for every configured category,
// taking at most per_category entries each and attaching a fresh
// identifier to every question.
func (c *Controller) CreateGame(ctx context.Context, guildID model.GuildID, cfg *model.GameConfig) (*model.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		GuildID:     guildID,
		Name:        cfg.Game.Name,
		Description: cfg.Game.Description,
		State:       model.GameStateConfigured,
		Teams:       make([]*model.Team, 0, len(cfg.Game.Teams)),
		Players:     []model.MemberID{},
		Categories:  append([]string(nil), cfg.Game.Categories...),
		PerCategory: cfg.Game.PerCategory,
		Buzzes:      make(map[model.QuestionID][]string),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, name := range cfg.Game.Teams {
		game.Teams = append(game.Teams, model.NewTeam(name))
	}

	for _, cat := range cfg.Game.Categories {
		questions := cfg.Questions[cat]
		if len(questions) > cfg.Game.PerCategory {
			questions = questions[:cfg.Game.PerCategory]
		}
		for _, qc := range questions {
			q, err := model.NewQuestion(cat, qc.Question, qc.Answer, qc.Value)
			if err != nil {
				return nil, err
			}
			game.Questions = append(game.Questions, q)
		}
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("guild_id", string(guildID)),
		slog.Int("team_count", len(game.Teams)),
		slog.Int("question_count", len(game.Questions)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// Announce opens the game for enrollment and notifies the presentation layer
func (c *Controller) Announce(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	switch game.State {
	case model.GameStateAnnounced:
		return model.ErrAlreadyAnnounced
	case model.GameStateStarted:
		return model.ErrAlreadyStarted
	case model.GameStateEnded:
		return model.ErrGameEnded
	}

	game.State = model.GameStateAnnounced
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	if err := c.presenter.AnnounceGame(ctx, game.GuildID, game.Name, game.Description); err != nil {
		// Presentation failures never corrupt game state
		c.logger.Warn("announce callback failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// Enroll adds a member to the enrollment list. Valid only before the game
// starts; enrolling twice is a no-op.
func (c *Controller) Enroll(ctx context.Context, gameID model.GameID, member model.MemberID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.State == model.GameStateStarted || game.State == model.GameStateEnded {
		return model.ErrEnrollmentClosed
	}

	if game.IsEnrolled(member) {
		return nil
	}

	game.Players = append(game.Players, member)
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// Withdraw removes a member from the enrollment list before the game starts
func (c *Controller) Withdraw(ctx context.Context, gameID model.GameID, member model.MemberID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.State == model.GameStateStarted || game.State == model.GameStateEnded {
		return model.ErrEnrollmentClosed
	}

	for i, m := range game.Players {
		if m == member {
			game.Players = append(game.Players[:i], game.Players[i+1:]...)
			break
		}
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// AttachRole binds an external role handle to a team. The binding is
// write-once per team.
func (c *Controller) AttachRole(ctx context.Context, gameID model.GameID, teamName string, role model.RoleID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	team := game.TeamByName(teamName)
	if team == nil {
		return model.ErrTeamNotFound
	}

	if err := team.AttachRole(role); err != nil {
		return err
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// Start transitions the game to Started exactly once: enrollment freezes,
// teams are balanced, and the presentation layer is asked to assign each
// member their team's role.
func (c *Controller) Start(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.State {
	case model.GameStateStarted:
		return nil, model.ErrAlreadyStarted
	case model.GameStateEnded:
		return nil, model.ErrGameEnded
	}

	if err := c.balance(game); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.State = model.GameStateStarted
	game.StartedAt = &now
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.assignRoles(ctx, game)

	c.logger.Info("game started",
		slog.String("game_id", string(gameID)),
		slog.String("guild_id", string(game.GuildID)),
		slog.Int("player_count", len(game.Players)),
		slog.Int("team_count", len(game.Teams)),
	)

	return game, nil
}

// Rebalance redistributes the enrolled players across teams of a started
// game, e.g. after the host fixes a lopsided draw. No stale assignments
// survive: every roster is rebuilt from scratch.
func (c *Controller) Rebalance(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State == model.GameStateEnded {
		return nil, model.ErrGameEnded
	}
	if game.State != model.GameStateStarted {
		return nil, model.ErrGameNotStarted
	}

	if err := c.balance(game); err != nil {
		return nil, err
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.assignRoles(ctx, game)

	return game, nil
}

// balance shuffles the enrolled players and deals them round-robin
// (player index mod team count), so team sizes differ by at most one.
// It either completes fully or leaves the game unchanged.
func (c *Controller) balance(game *model.Game) error {
	if len(game.Teams) == 0 {
		return model.ErrNoTeams
	}

	players := append([]model.MemberID(nil), game.Players...)
	c.random.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	rosters := make([][]model.MemberID, len(game.Teams))
	for i := range rosters {
		rosters[i] = []model.MemberID{}
	}
	for i, member := range players {
		idx := i % len(game.Teams)
		rosters[idx] = append(rosters[idx], member)
	}

	for i, team := range game.Teams {
		team.Members = rosters[i]
	}
	return nil
}

// assignRoles requests a role grant for every (team, member) pair whose
// team has a bound role. Failures are logged and skipped.
func (c *Controller) assignRoles(ctx context.Context, game *model.Game) {
	for _, team := range game.Teams {
		if team.RoleID == "" {
			continue
		}
		for _, member := range team.Members {
			if err := c.presenter.AssignTeamRole(ctx, game.GuildID, member, team.RoleID); err != nil {
				c.logger.Warn("role assignment failed",
					slog.String("game_id", string(game.ID)),
					slog.String("team", team.Name),
					slog.String("member_id", string(member)),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// ShowQuestion looks up a question for display and opens (or re-opens) its
// buzz record. Teams that buzzed on an earlier display stay recorded, so a
// re-display never lets the same team buzz twice.
func (c *Controller) ShowQuestion(ctx context.Context, gameID model.GameID, questionID model.QuestionID) (*model.Question, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := requireStarted(game); err != nil {
		return nil, err
	}

	question := game.QuestionByID(questionID)
	if question == nil {
		return nil, model.ErrQuestionNotFound
	}

	if _, ok := game.Buzzes[questionID]; !ok {
		game.Buzzes[questionID] = []string{}
		game.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
	}

	return question, nil
}

// BuzzIn records a team buzzing on a shown question. Each team may buzz
// at most once per question.
func (c *Controller) BuzzIn(ctx context.Context, gameID model.GameID, questionID model.QuestionID, teamName string) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if err := requireStarted(game); err != nil {
		return err
	}

	if game.TeamByName(teamName) == nil {
		return model.ErrTeamNotFound
	}

	question := game.QuestionByID(questionID)
	if question == nil {
		return model.ErrQuestionNotFound
	}
	if question.Answered {
		return model.ErrQuestionAnswered
	}

	if _, shown := game.Buzzes[questionID]; !shown {
		return model.ErrQuestionNotShown
	}
	if game.HasBuzzed(questionID, teamName) {
		return model.ErrAlreadyBuzzed
	}

	game.Buzzes[questionID] = append(game.Buzzes[questionID], teamName)
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// AnswerQuestion marks a question answered and returns it. An unknown
// identifier yields ErrQuestionNotFound with no state change; answering
// an already-answered question yields ErrQuestionAnswered.
func (c *Controller) AnswerQuestion(ctx context.Context, gameID model.GameID, questionID model.QuestionID) (*model.Question, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := requireStarted(game); err != nil {
		return nil, err
	}

	question := game.QuestionByID(questionID)
	if question == nil {
		return nil, model.ErrQuestionNotFound
	}

	if err := question.MarkAnswered(); err != nil {
		return nil, err
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return question, nil
}

// AwardPoints adds points to the named team's score. Negative deltas are
// allowed and scores have no floor.
func (c *Controller) AwardPoints(ctx context.Context, gameID model.GameID, teamName string, points int) (*model.Team, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := requireStarted(game); err != nil {
		return nil, err
	}

	team := game.TeamByName(teamName)
	if team == nil {
		return nil, model.ErrTeamNotFound
	}

	team.AddPoints(points)
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("points awarded",
		slog.String("game_id", string(gameID)),
		slog.String("team", teamName),
		slog.Int("points", points),
		slog.Int("score", team.Score),
	)

	return team, nil
}

// Board returns the grid view of the game
func (c *Controller) Board(ctx context.Context, gameID model.GameID) (model.Board, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return game.Board(), nil
}

// EndGame freezes the game. Ending is terminal; a guild gets a fresh game
// rather than a reset one.
func (c *Controller) EndGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State == model.GameStateEnded {
		return nil, model.ErrGameEnded
	}

	now := c.clock.Now()
	game.State = model.GameStateEnded
	game.EndedAt = &now
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game ended",
		slog.String("game_id", string(gameID)),
		slog.String("guild_id", string(game.GuildID)),
	)

	return game, nil
}

func requireStarted(game *model.Game) error {
	switch game.State {
	case model.GameStateEnded:
		return model.ErrGameEnded
	case model.GameStateStarted:
		return nil
	default:
		return model.ErrGameNotStarted
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, guildID model.GuildID, cfg *model.GameConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	Announce(ctx context.Context, gameID model.GameID) error
	Enroll(ctx context.Context, gameID model.GameID, member model.MemberID) error
	Withdraw(ctx context.Context, gameID model.GameID, member model.MemberID) error
	AttachRole(ctx context.Context, gameID model.GameID, teamName string, role model.RoleID) error
	Start(ctx context.Context, gameID model.GameID) (*model.Game, error)
	Rebalance(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ShowQuestion(ctx context.Context, gameID model.GameID, questionID model.QuestionID) (*model.Question, error)
	BuzzIn(ctx context.Context, gameID model.GameID, questionID model.QuestionID, teamName string) error
	AnswerQuestion(ctx context.Context, gameID model.GameID, questionID model.QuestionID) (*model.Question, error)
	AwardPoints(ctx context.Context, gameID model.GameID, teamName string, points int) (*model.Team, error)
	Board(ctx context.Context, gameID model.GameID) (model.Board, error)
	EndGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
