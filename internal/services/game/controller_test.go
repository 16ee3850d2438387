package game_test

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
	"github.com/quizhost/quizhost/internal/storage/memory"
)

type ControllerSuite struct {
	suite.Suite

	storage    *memory.Storage
	presenter  *mocks.MockPresenter
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *game.Controller

	ctx context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.presenter = mocks.NewMockPresenter()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.random.QueueString("GAME1", "GAME2", "GAME3")
	s.controller = game.NewController(s.storage, s.presenter, s.clock, s.random, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *ControllerSuite) config() *model.GameConfig {
	return &model.GameConfig{
		Game: model.GameInfo{
			Name:        "Trivia Night",
			Description: "Friday trivia",
			Teams:       []string{"Red", "Blue", "Green"},
			Categories:  []string{"History", "Science"},
			PerCategory: 2,
		},
		Questions: map[string][]model.QuestionConfig{
			"History": {
				{Question: "H1", Answer: "A1", Value: 100},
				{Question: "H2", Answer: "A2", Value: 200},
				{Question: "H3", Answer: "A3", Value: 300},
			},
			"Science": {
				{Question: "S1", Answer: "A1", Value: 100},
				{Question: "S2", Answer: "A2", Value: 200},
			},
		},
	}
}

func (s *ControllerSuite) createGame() *model.Game {
	g, err := s.controller.CreateGame(s.ctx, "guild-1", s.config())
	s.Require().NoError(err)
	return g
}

// createStartedGame builds a game with the given enrolled players and
// starts it
func (s *ControllerSuite) createStartedGame(players ...model.MemberID) *model.Game {
	g := s.createGame()
	for _, p := range players {
		s.Require().NoError(s.controller.Enroll(s.ctx, g.ID, p))
	}
	started, err := s.controller.Start(s.ctx, g.ID)
	s.Require().NoError(err)
	return started
}

func (s *ControllerSuite) TestCreateGame() {
	g := s.createGame()

	s.Equal(model.GameID("GAME1"), g.ID)
	s.Equal(model.GuildID("guild-1"), g.GuildID)
	s.Equal(model.GameStateConfigured, g.State)
	s.Len(g.Teams, 3)
	s.Empty(g.Players)
	// History is truncated to per_category, Science fits exactly
	s.Len(g.Questions, 4)

	history := g.QuestionsByCategory("History")
	s.Len(history, 2)
	s.Equal("H1", history[0].Prompt)
	s.Equal("H2", history[1].Prompt)

	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(g.ID, stored.ID)
}

func (s *ControllerSuite) TestCreateGameInvalidConfig() {
	cfg := s.config()
	cfg.Game.Teams = nil

	_, err := s.controller.CreateGame(s.ctx, "guild-1", cfg)
	s.ErrorIs(err, model.ErrInvalidConfig)
}

func (s *ControllerSuite) TestAnnounce() {
	g := s.createGame()

	s.Require().NoError(s.controller.Announce(s.ctx, g.ID))

	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateAnnounced, stored.State)
	s.Equal([]model.GuildID{"guild-1"}, s.presenter.Announcements)

	s.ErrorIs(s.controller.Announce(s.ctx, g.ID), model.ErrAlreadyAnnounced)
}

func (s *ControllerSuite) TestEnrollAndWithdraw() {
	g := s.createGame()

	s.Require().NoError(s.controller.Enroll(s.ctx, g.ID, "alice"))
	s.Require().NoError(s.controller.Enroll(s.ctx, g.ID, "bob"))
	// Enrolling twice is a no-op
	s.Require().NoError(s.controller.Enroll(s.ctx, g.ID, "alice"))

	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal([]model.MemberID{"alice", "bob"}, stored.Players)

	s.Require().NoError(s.controller.Withdraw(s.ctx, g.ID, "alice"))

	stored, err = s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal([]model.MemberID{"bob"}, stored.Players)
}

func (s *ControllerSuite) TestEnrollAfterStart() {
	g := s.createStartedGame("alice")

	s.ErrorIs(s.controller.Enroll(s.ctx, g.ID, "bob"), model.ErrEnrollmentClosed)
	s.ErrorIs(s.controller.Withdraw(s.ctx, g.ID, "alice"), model.ErrEnrollmentClosed)
}

func (s *ControllerSuite) TestStartBalancesTeams() {
	// Seven players over three teams: sizes 3, 2, 2 with the identity
	// shuffle dealing in enrollment order
	g := s.createStartedGame("p1", "p2", "p3", "p4", "p5", "p6", "p7")

	s.Equal(model.GameStateStarted, g.State)
	s.Require().NotNil(g.StartedAt)

	s.Equal([]model.MemberID{"p1", "p4", "p7"}, g.Teams[0].Members)
	s.Equal([]model.MemberID{"p2", "p5"}, g.Teams[1].Members)
	s.Equal([]model.MemberID{"p3", "p6"}, g.Teams[2].Members)
}

func (s *ControllerSuite) TestStartTwice() {
	g := s.createStartedGame("alice")

	_, err := s.controller.Start(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrAlreadyStarted)
}

func (s *ControllerSuite) TestStartWithNoTeams() {
	g := s.createGame()

	// Storage-level doctoring; configs cannot produce a teamless game
	g.Teams = nil
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	_, err := s.controller.Start(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrNoTeams)

	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateConfigured, stored.State)
}

func (s *ControllerSuite) TestStartAssignsRoles() {
	g := s.createGame()
	s.Require().NoError(s.controller.AttachRole(s.ctx, g.ID, "Red", "role-red"))
	for _, p := range []model.MemberID{"p1", "p2", "p3"} {
		s.Require().NoError(s.controller.Enroll(s.ctx, g.ID, p))
	}

	_, err := s.controller.Start(s.ctx, g.ID)
	s.Require().NoError(err)

	// Only Red has a bound role; it received p1 under the identity shuffle
	s.Equal([]mocks.RoleAssignment{
		{GuildID: "guild-1", Member: "p1", Role: "role-red"},
	}, s.presenter.RoleAssignments)
}

func (s *ControllerSuite) TestRoleAssignmentFailureDoesNotAbortStart() {
	s.presenter.AssignRoleErr = context.DeadlineExceeded

	g := s.createGame()
	s.Require().NoError(s.controller.AttachRole(s.ctx, g.ID, "Red", "role-red"))
	s.Require().NoError(s.controller.Enroll(s.ctx, g.ID, "p1"))

	started, err := s.controller.Start(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateStarted, started.State)
}

func (s *ControllerSuite) TestRebalance() {
	g := s.createStartedGame("p1", "p2", "p3")

	// Reverse the roster order on rebalance
	s.random.ShuffleFunc = func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}

	rebalanced, err := s.controller.Rebalance(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal([]model.MemberID{"p3"}, rebalanced.Teams[0].Members)
	s.Equal([]model.MemberID{"p2"}, rebalanced.Teams[1].Members)
	s.Equal([]model.MemberID{"p1"}, rebalanced.Teams[2].Members)
}

func (s *ControllerSuite) TestRebalanceBeforeStart() {
	g := s.createGame()

	_, err := s.controller.Rebalance(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameNotStarted)
}

func (s *ControllerSuite) TestAttachRole() {
	g := s.createGame()

	s.Require().NoError(s.controller.AttachRole(s.ctx, g.ID, "Red", "role-red"))
	s.ErrorIs(s.controller.AttachRole(s.ctx, g.ID, "Red", "role-other"), model.ErrRoleAlreadyBound)
	s.ErrorIs(s.controller.AttachRole(s.ctx, g.ID, "Yellow", "role-x"), model.ErrTeamNotFound)
}

func (s *ControllerSuite) TestQuestionFlow() {
	g := s.createStartedGame("alice", "bob")
	qid := g.Questions[0].ID

	// Buzzing before the question is shown is rejected
	s.ErrorIs(s.controller.BuzzIn(s.ctx, g.ID, qid, "Red"), model.ErrQuestionNotShown)

	q, err := s.controller.ShowQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)
	s.Equal("H1", q.Prompt)

	s.Require().NoError(s.controller.BuzzIn(s.ctx, g.ID, qid, "Red"))
	s.Require().NoError(s.controller.BuzzIn(s.ctx, g.ID, qid, "Blue"))
	s.ErrorIs(s.controller.BuzzIn(s.ctx, g.ID, qid, "Red"), model.ErrAlreadyBuzzed)
	s.ErrorIs(s.controller.BuzzIn(s.ctx, g.ID, qid, "Yellow"), model.ErrTeamNotFound)

	answered, err := s.controller.AnswerQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)
	s.True(answered.Answered)

	// Buzz order is preserved in storage
	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Red", "Blue"}, stored.Buzzes[qid])
}

func (s *ControllerSuite) TestShowQuestionPreservesBuzzes() {
	g := s.createStartedGame("alice")
	qid := g.Questions[0].ID

	_, err := s.controller.ShowQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)
	s.Require().NoError(s.controller.BuzzIn(s.ctx, g.ID, qid, "Red"))

	// Re-display keeps the buzz record
	_, err = s.controller.ShowQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)
	s.ErrorIs(s.controller.BuzzIn(s.ctx, g.ID, qid, "Red"), model.ErrAlreadyBuzzed)
}

func (s *ControllerSuite) TestBuzzOnAnsweredQuestion() {
	g := s.createStartedGame("alice")
	qid := g.Questions[0].ID

	_, err := s.controller.ShowQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)
	_, err = s.controller.AnswerQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)

	s.ErrorIs(s.controller.BuzzIn(s.ctx, g.ID, qid, "Red"), model.ErrQuestionAnswered)
}

func (s *ControllerSuite) TestAnswerQuestionTwice() {
	g := s.createStartedGame("alice")
	qid := g.Questions[0].ID

	_, err := s.controller.AnswerQuestion(s.ctx, g.ID, qid)
	s.Require().NoError(err)

	_, err = s.controller.AnswerQuestion(s.ctx, g.ID, qid)
	s.ErrorIs(err, model.ErrQuestionAnswered)
}

func (s *ControllerSuite) TestAnswerUnknownQuestion() {
	g := s.createStartedGame("alice")

	_, err := s.controller.AnswerQuestion(s.ctx, g.ID, "missing")
	s.ErrorIs(err, model.ErrQuestionNotFound)

	// No state change
	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	for _, q := range stored.Questions {
		s.False(q.Answered)
	}
}

func (s *ControllerSuite) TestQuestionFlowRequiresStarted() {
	g := s.createGame()
	qid := g.Questions[0].ID

	_, err := s.controller.ShowQuestion(s.ctx, g.ID, qid)
	s.ErrorIs(err, model.ErrGameNotStarted)

	_, err = s.controller.AnswerQuestion(s.ctx, g.ID, qid)
	s.ErrorIs(err, model.ErrGameNotStarted)
}

func (s *ControllerSuite) TestAwardPoints() {
	g := s.createStartedGame("alice")

	team, err := s.controller.AwardPoints(s.ctx, g.ID, "Red", 200)
	s.Require().NoError(err)
	s.Equal(200, team.Score)

	// Negative awards are deductions
	team, err = s.controller.AwardPoints(s.ctx, g.ID, "Red", -300)
	s.Require().NoError(err)
	s.Equal(-100, team.Score)
}

func (s *ControllerSuite) TestAwardPointsUnknownTeam() {
	g := s.createStartedGame("alice")

	_, err := s.controller.AwardPoints(s.ctx, g.ID, "Yellow", 100)
	s.ErrorIs(err, model.ErrTeamNotFound)

	stored, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	for _, team := range stored.Teams {
		s.Zero(team.Score)
	}
}

func (s *ControllerSuite) TestBoard() {
	g := s.createStartedGame("alice")

	_, err := s.controller.AnswerQuestion(s.ctx, g.ID, g.Questions[0].ID)
	s.Require().NoError(err)

	board, err := s.controller.Board(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.Board{
		"History": {model.AnsweredMask, "200"},
		"Science": {"100", "200"},
	}, board)
}

func (s *ControllerSuite) TestEndGame() {
	g := s.createStartedGame("alice")

	ended, err := s.controller.EndGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateEnded, ended.State)
	s.Require().NotNil(ended.EndedAt)

	// Ending is terminal
	_, err = s.controller.EndGame(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameEnded)

	_, err = s.controller.Start(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameEnded)

	s.ErrorIs(s.controller.Enroll(s.ctx, g.ID, "bob"), model.ErrEnrollmentClosed)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}
