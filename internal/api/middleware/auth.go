// Package middleware provides HTTP middleware for the API layer, most
// importantly the authentication gate that guards every protected route.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/service/auth"
)

// AuthMiddleware provides cookie-based JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the JWT carried by the auth cookie and adds the
// caller's user ID to the request context. A missing or invalid cookie
// short-circuits with 401 before any handler logic runs; the middleware
// mutates only the per-request context, never global state.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(shared.AuthCookieName)
		if err != nil || cookie.Value == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "authorization required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid authorization token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		// Attach the caller identity and continue.
		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
