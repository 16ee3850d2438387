package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/quizhost/quizhost/internal/api/apierr"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/auth"
)

type contextKey string

const (
	hostContextKey    contextKey = "host"
	sessionContextKey contextKey = "session"
)

// Auth creates authentication middleware that requires a valid session token
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), hostContextKey, &session.Host)
			ctx = context.WithValue(ctx, sessionContextKey, session)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

// GetHost retrieves the authenticated host from the request context
func GetHost(ctx context.Context) (*model.Host, bool) {
	host, ok := ctx.Value(hostContextKey).(*model.Host)
	return host, ok
}

// MustGetHost retrieves the authenticated host or panics.
// Only for use in handlers behind the Auth middleware.
func MustGetHost(ctx context.Context) *model.Host {
	host, ok := GetHost(ctx)
	if !ok {
		panic("host not found in context; handler not behind auth middleware")
	}
	return host
}

// GetSession retrieves the session from the request context
func GetSession(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*auth.Session)
	return session, ok
}
