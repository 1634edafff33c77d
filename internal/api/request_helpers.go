package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/domain"
)

// getUserIDFromContext extracts the authenticated caller's UUID from the
// request context. The user ID is placed there by the authentication
// middleware; a missing or nil value means the route was reached without a
// caller identity.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts a UUID from the named URL path parameter.
// A missing or malformed parameter yields domain.ErrInvalidID, which the
// classifier turns into a 400 "invalid identifier" response.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requireCaller extracts the caller identity and writes the 401 response
// itself when the identity is missing. Returns false when the request has
// already been answered.
func requireCaller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
