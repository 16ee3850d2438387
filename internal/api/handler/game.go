package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizhost/quizhost/internal/api/apierr"
	"github.com/quizhost/quizhost/internal/api/request"
	"github.com/quizhost/quizhost/internal/api/response"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/game"
	"github.com/quizhost/quizhost/internal/services/scoring"
	"github.com/quizhost/quizhost/internal/services/session"
)

// GameHandler handles game endpoints. Every route is addressed to a guild;
// the session controller resolves the guild's single active game.
type GameHandler struct {
	sessions *session.Controller
	games    game.ControllerInterface
	scoring  *scoring.Service
	logger   *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	sessions *session.Controller,
	games game.ControllerInterface,
	scoringService *scoring.Service,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		sessions: sessions,
		games:    games,
		scoring:  scoringService,
		logger:   logger,
	}
}

func guildID(r *http.Request) model.GuildID {
	return model.GuildID(mux.Vars(r)["guild_id"])
}

func questionID(r *http.Request) model.QuestionID {
	return model.QuestionID(mux.Vars(r)["question_id"])
}

// currentGame resolves the guild's active game or writes the error
func (h *GameHandler) currentGame(w http.ResponseWriter, r *http.Request) (*model.Game, bool) {
	g, err := h.sessions.CurrentGame(r.Context(), guildID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return nil, false
	}
	return g, true
}

// CreateGame handles POST /api/v1/guilds/{guild_id}/game
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	var (
		g   *model.Game
		err error
	)
	switch {
	case req.Config != nil && req.FromPack == nil:
		g, err = h.sessions.CreateGame(r.Context(), guildID(r), req.Config)
	case req.FromPack != nil && req.Config == nil:
		p := req.FromPack
		g, err = h.sessions.CreateGameFromPack(r.Context(), guildID(r),
			p.Pack, p.Name, p.Description, p.Teams, p.PerCategory)
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("Exactly one of config or from_pack must be set"))
		return
	}
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// GetGame handles GET /api/v1/guilds/{guild_id}/game
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Announce handles POST /api/v1/guilds/{guild_id}/game/announce
func (h *GameHandler) Announce(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	if err := h.games.Announce(r.Context(), g.ID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Enroll handles POST /api/v1/guilds/{guild_id}/game/enroll
func (h *GameHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req request.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MemberID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("member_id is required"))
		return
	}

	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	if err := h.games.Enroll(r.Context(), g.ID, model.MemberID(req.MemberID)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Withdraw handles POST /api/v1/guilds/{guild_id}/game/withdraw
func (h *GameHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req request.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MemberID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("member_id is required"))
		return
	}

	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	if err := h.games.Withdraw(r.Context(), g.ID, model.MemberID(req.MemberID)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Start handles POST /api/v1/guilds/{guild_id}/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	started, err := h.games.Start(r.Context(), g.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(started))
}

// Rebalance handles POST /api/v1/guilds/{guild_id}/game/rebalance
func (h *GameHandler) Rebalance(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	rebalanced, err := h.games.Rebalance(r.Context(), g.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(rebalanced))
}

// Board handles GET /api/v1/guilds/{guild_id}/game/board
func (h *GameHandler) Board(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	board, err := h.games.Board(r.Context(), g.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(board))
}

// Standings handles GET /api/v1/guilds/{guild_id}/game/standings
func (h *GameHandler) Standings(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	rows := h.scoring.Standings(g)
	winners := h.scoring.Winners(g)
	response.JSON(w, http.StatusOK, response.StandingsFromModel(rows, winners))
}

// ShowQuestion handles POST /api/v1/guilds/{guild_id}/game/questions/{question_id}/show
func (h *GameHandler) ShowQuestion(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	q, err := h.games.ShowQuestion(r.Context(), g.ID, questionID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuestionFromModel(q))
}

// BuzzIn handles POST /api/v1/guilds/{guild_id}/game/questions/{question_id}/buzz
func (h *GameHandler) BuzzIn(w http.ResponseWriter, r *http.Request) {
	var req request.BuzzRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Team == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("team is required"))
		return
	}

	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	if err := h.games.BuzzIn(r.Context(), g.ID, questionID(r), req.Team); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AnswerQuestion handles POST /api/v1/guilds/{guild_id}/game/questions/{question_id}/answer.
// The response reveals the answer; this is the host closing the question out.
func (h *GameHandler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	q, err := h.games.AnswerQuestion(r.Context(), g.ID, questionID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuestionWithAnswer(q))
}

// AttachRole handles PUT /api/v1/guilds/{guild_id}/game/teams/{team}/role
func (h *GameHandler) AttachRole(w http.ResponseWriter, r *http.Request) {
	var req request.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RoleID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("role_id is required"))
		return
	}

	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	teamName := mux.Vars(r)["team"]
	if err := h.games.AttachRole(r.Context(), g.ID, teamName, model.RoleID(req.RoleID)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AwardPoints handles POST /api/v1/guilds/{guild_id}/game/teams/{team}/points
func (h *GameHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	var req request.PointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	g, ok := h.currentGame(w, r)
	if !ok {
		return
	}

	teamName := mux.Vars(r)["team"]
	team, err := h.games.AwardPoints(r.Context(), g.ID, teamName, req.Points)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team))
}

// EndGame handles POST /api/v1/guilds/{guild_id}/game/end
func (h *GameHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sessions.EndGame(r.Context(), guildID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameSummaryFromModel(summary))
}

// History handles GET /api/v1/guilds/{guild_id}/history
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.sessions.History(r.Context(), guildID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.GameSummary, len(summaries))
	for i := range summaries {
		out[i] = response.GameSummaryFromModel(&summaries[i])
	}
	response.JSON(w, http.StatusOK, out)
}
