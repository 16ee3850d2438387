package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quizhost/quizhost/internal/api/apierr"
	"github.com/quizhost/quizhost/internal/api/middleware"
	"github.com/quizhost/quizhost/internal/api/request"
	"github.com/quizhost/quizhost/internal/api/response"
	"github.com/quizhost/quizhost/internal/services/auth"
)

// HostHandler handles host account endpoints
type HostHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewHostHandler creates a new host handler
func NewHostHandler(authService *auth.Service, logger *slog.Logger) *HostHandler {
	return &HostHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/v1/hosts/register
func (h *HostHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.DisplayName, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("host registered",
		slog.String("host_id", string(session.HostID)),
		slog.String("username", session.Host.Username))

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/hosts/login
func (h *HostHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/hosts/logout
func (h *HostHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		apierr.WriteError(w, apierr.NewUnauthorizedError())
		return
	}

	h.authService.Logout(session.Token)
	response.NoContent(w)
}

// Me handles GET /api/v1/hosts/me
func (h *HostHandler) Me(w http.ResponseWriter, r *http.Request) {
	host := middleware.MustGetHost(r.Context())
	response.JSON(w, http.StatusOK, response.HostFromModel(host))
}
