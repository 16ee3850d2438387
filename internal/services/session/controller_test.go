package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quizhost/quizhost/internal/dependencies/mocks"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/game"
	"github.com/quizhost/quizhost/internal/services/scoring"
	"github.com/quizhost/quizhost/internal/services/session"
	"github.com/quizhost/quizhost/internal/storage/memory"
)

type ControllerSuite struct {
	suite.Suite

	storage    *memory.Storage
	clock      *mocks.MockClock
	gameCtrl   *game.Controller
	controller *session.Controller

	ctx context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	random := mocks.NewMockRandom()
	random.QueueString("GAME1", "GAME2", "GAME3")

	s.gameCtrl = game.NewController(s.storage, mocks.NewMockPresenter(), s.clock, random, logger)
	s.controller = session.NewController(s.storage, s.gameCtrl, scoring.New(), s.clock, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) config() *model.GameConfig {
	return &model.GameConfig{
		Game: model.GameInfo{
			Name:        "Trivia Night",
			Teams:       []string{"Red", "Blue"},
			Categories:  []string{"History"},
			PerCategory: 1,
		},
		Questions: map[string][]model.QuestionConfig{
			"History": {{Question: "Q1", Answer: "A1", Value: 100}},
		},
	}
}

func (s *ControllerSuite) TestCreateGame() {
	g, err := s.controller.CreateGame(s.ctx, "guild-1", s.config())
	s.Require().NoError(err)

	current, err := s.controller.CurrentGame(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal(g.ID, current.ID)
}

func (s *ControllerSuite) TestOneGamePerGuild() {
	_, err := s.controller.CreateGame(s.ctx, "guild-1", s.config())
	s.Require().NoError(err)

	_, err = s.controller.CreateGame(s.ctx, "guild-1", s.config())
	s.ErrorIs(err, model.ErrGameInProgress)

	// Other guilds are unaffected
	_, err = s.controller.CreateGame(s.ctx, "guild-2", s.config())
	s.NoError(err)
}

func (s *ControllerSuite) TestCurrentGameWithoutSession() {
	_, err := s.controller.CurrentGame(s.ctx, "guild-1")
	s.ErrorIs(err, model.ErrNoActiveGame)
}

func (s *ControllerSuite) TestEndGameRecordsHistory() {
	g, err := s.controller.CreateGame(s.ctx, "guild-1", s.config())
	s.Require().NoError(err)

	_, err = s.gameCtrl.Start(s.ctx, g.ID)
	s.Require().NoError(err)
	_, err = s.gameCtrl.AwardPoints(s.ctx, g.ID, "Red", 300)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	summary, err := s.controller.EndGame(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal(g.ID, summary.GameID)
	s.Equal(map[string]int{"Red": 300, "Blue": 0}, summary.FinalScores)
	s.Equal([]string{"Red"}, summary.Winners)
	s.Equal(s.clock.Now(), summary.EndedAt)

	// The guild is free for a new game
	_, err = s.controller.CurrentGame(s.ctx, "guild-1")
	s.ErrorIs(err, model.ErrNoActiveGame)

	history, err := s.controller.History(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(g.ID, history[0].GameID)
}

func (s *ControllerSuite) TestEndGameWithoutActiveGame() {
	_, err := s.controller.EndGame(s.ctx, "guild-1")
	s.ErrorIs(err, model.ErrNoActiveGame)
}

func (s *ControllerSuite) TestHistoryEmptyWithoutSession() {
	history, err := s.controller.History(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *ControllerSuite) TestHistoryAccumulates() {
	for i := 0; i < 2; i++ {
		g, err := s.controller.CreateGame(s.ctx, "guild-1", s.config())
		s.Require().NoError(err)
		_, err = s.gameCtrl.Start(s.ctx, g.ID)
		s.Require().NoError(err)
		_, err = s.controller.EndGame(s.ctx, "guild-1")
		s.Require().NoError(err)
	}

	history, err := s.controller.History(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(model.GameID("GAME1"), history[0].GameID)
	s.Equal(model.GameID("GAME2"), history[1].GameID)
}

func (s *ControllerSuite) TestCreateGameFromPack() {
	pack := &model.QuestionPack{
		Name: "general",
		Categories: map[string][]model.QuestionConfig{
			"Science": {{Question: "S1", Answer: "A1", Value: 100}},
			"History": {{Question: "H1", Answer: "A1", Value: 100}},
		},
	}
	s.Require().NoError(s.storage.SavePack(s.ctx, pack))

	g, err := s.controller.CreateGameFromPack(s.ctx, "guild-1",
		"general", "Pack Night", "from the pack", []string{"Red", "Blue"}, 1)
	s.Require().NoError(err)

	s.Equal("Pack Night", g.Name)
	// Categories are sorted for a deterministic board
	s.Equal([]string{"History", "Science"}, g.Categories)
	s.Len(g.Questions, 2)
}

func (s *ControllerSuite) TestCreateGameFromMissingPack() {
	_, err := s.controller.CreateGameFromPack(s.ctx, "guild-1",
		"missing", "Pack Night", "", []string{"Red"}, 1)
	s.ErrorIs(err, model.ErrPackNotFound)
}
