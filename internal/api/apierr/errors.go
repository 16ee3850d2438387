package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeQuestionNotFound   = "QUESTION_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodePackNotFound       = "PACK_NOT_FOUND"
	CodeNoActiveGame       = "NO_ACTIVE_GAME"
	CodeGameInProgress     = "GAME_IN_PROGRESS"
	CodeNoTeams            = "NO_TEAMS"
	CodeRoleAlreadyBound   = "ROLE_ALREADY_BOUND"
	CodeAlreadyAnnounced   = "ALREADY_ANNOUNCED"
	CodeAlreadyStarted     = "ALREADY_STARTED"
	CodeGameNotStarted     = "GAME_NOT_STARTED"
	CodeGameEnded          = "GAME_ENDED"
	CodeEnrollmentClosed   = "ENROLLMENT_CLOSED"
	CodeAlreadyBuzzed      = "ALREADY_BUZZED"
	CodeQuestionAnswered   = "QUESTION_ANSWERED"
	CodeQuestionNotShown   = "QUESTION_NOT_SHOWN"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidConfig), errors.Is(err, model.ErrInvalidQuestion), errors.Is(err, model.ErrInvalidPack):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, err.Error()}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrQuestionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeQuestionNotFound, "Question not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPackNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePackNotFound, "Question pack not found"}}
	case errors.Is(err, model.ErrNoActiveGame):
		return &httpError{http.StatusNotFound, APIError{CodeNoActiveGame, "No active game for this guild"}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "A game is already in progress for this guild"}}
	case errors.Is(err, model.ErrNoTeams):
		return &httpError{http.StatusConflict, APIError{CodeNoTeams, "Game has no teams"}}
	case errors.Is(err, model.ErrRoleAlreadyBound):
		return &httpError{http.StatusConflict, APIError{CodeRoleAlreadyBound, "Team role is already bound"}}
	case errors.Is(err, model.ErrAlreadyAnnounced):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyAnnounced, "Game is already announced"}}
	case errors.Is(err, model.ErrAlreadyStarted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyStarted, "Game is already started"}}
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "Game has not started"}}
	case errors.Is(err, model.ErrGameEnded):
		return &httpError{http.StatusConflict, APIError{CodeGameEnded, "Game has ended"}}
	case errors.Is(err, model.ErrEnrollmentClosed):
		return &httpError{http.StatusConflict, APIError{CodeEnrollmentClosed, "Enrollment is closed"}}
	case errors.Is(err, model.ErrAlreadyBuzzed):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyBuzzed, "Team has already buzzed on this question"}}
	case errors.Is(err, model.ErrQuestionAnswered):
		return &httpError{http.StatusConflict, APIError{CodeQuestionAnswered, "Question is already answered"}}
	case errors.Is(err, model.ErrQuestionNotShown):
		return &httpError{http.StatusConflict, APIError{CodeQuestionNotShown, "Question has not been shown"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrInvalidUsername), errors.Is(err, auth.ErrInvalidPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
