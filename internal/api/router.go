package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizhost/quizhost/internal/api/apierr"
	"github.com/quizhost/quizhost/internal/api/handler"
	apimiddleware "github.com/quizhost/quizhost/internal/api/middleware"
	"github.com/quizhost/quizhost/internal/api/response"
	"github.com/quizhost/quizhost/internal/middleware"
	"github.com/quizhost/quizhost/internal/services/auth"
	"github.com/quizhost/quizhost/internal/services/catalog"
	"github.com/quizhost/quizhost/internal/services/game"
	"github.com/quizhost/quizhost/internal/services/scoring"
	"github.com/quizhost/quizhost/internal/services/session"
)

// RouterConfig holds the dependencies for the API router
type RouterConfig struct {
	AuthService    *auth.Service
	SessionCtrl    *session.Controller
	GameCtrl       game.ControllerInterface
	ScoringService *scoring.Service
	CatalogService *catalog.Service
	Logger         *slog.Logger
}

// NewRouter creates the API router with all routes and middleware configured.
// Reads (game view, board, standings, history, pack listing) are public;
// everything that mutates requires a host session.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	}))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	hosts := handler.NewHostHandler(cfg.AuthService, cfg.Logger)
	games := handler.NewGameHandler(cfg.SessionCtrl, cfg.GameCtrl, cfg.ScoringService, cfg.Logger)
	packs := handler.NewPackHandler(cfg.CatalogService, cfg.Logger)

	requireAuth := apimiddleware.Auth(cfg.AuthService)

	// Host accounts
	api.HandleFunc("/hosts/register", hosts.Register).Methods(http.MethodPost)
	api.HandleFunc("/hosts/login", hosts.Login).Methods(http.MethodPost)

	hostAuthed := api.PathPrefix("/hosts").Subrouter()
	hostAuthed.Use(requireAuth)
	hostAuthed.HandleFunc("/logout", hosts.Logout).Methods(http.MethodPost)
	hostAuthed.HandleFunc("/me", hosts.Me).Methods(http.MethodGet)

	// Guild-scoped reads
	api.HandleFunc("/guilds/{guild_id}/game", games.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/guilds/{guild_id}/game/board", games.Board).Methods(http.MethodGet)
	api.HandleFunc("/guilds/{guild_id}/game/standings", games.Standings).Methods(http.MethodGet)
	api.HandleFunc("/guilds/{guild_id}/history", games.History).Methods(http.MethodGet)

	// Guild-scoped mutations
	guildAuthed := api.PathPrefix("/guilds/{guild_id}/game").Subrouter()
	guildAuthed.Use(requireAuth)
	guildAuthed.HandleFunc("", games.CreateGame).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/announce", games.Announce).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/enroll", games.Enroll).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/withdraw", games.Withdraw).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/start", games.Start).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/rebalance", games.Rebalance).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/end", games.EndGame).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/questions/{question_id}/show", games.ShowQuestion).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/questions/{question_id}/buzz", games.BuzzIn).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/questions/{question_id}/answer", games.AnswerQuestion).Methods(http.MethodPost)
	guildAuthed.HandleFunc("/teams/{team}/role", games.AttachRole).Methods(http.MethodPut)
	guildAuthed.HandleFunc("/teams/{team}/points", games.AwardPoints).Methods(http.MethodPost)

	// Question packs
	api.HandleFunc("/packs", packs.ListPacks).Methods(http.MethodGet)
	api.HandleFunc("/packs/{name}", packs.GetPack).Methods(http.MethodGet)

	packAuthed := api.PathPrefix("/packs").Subrouter()
	packAuthed.Use(requireAuth)
	packAuthed.HandleFunc("/{name}", packs.CreatePack).Methods(http.MethodPut)
	packAuthed.HandleFunc("/{name}", packs.DeletePack).Methods(http.MethodDelete)

	return r
}
