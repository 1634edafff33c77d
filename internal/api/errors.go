package api

import (
	"errors"
	"net/http"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/service/auth"
	"github.com/mesto-project/mesto-api/internal/store"
)

// ErrCardNotOwned is returned when a caller tries to delete a card that
// belongs to a different owner.
var ErrCardNotOwned = errors.New("card belongs to another owner")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. Classification precedence: duplicate key, invalid
// data, invalid identifier, not found, ownership, missing identity, internal.
func MapErrorToStatusCode(err error) int {
	switch {
	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Authorization errors
	case errors.Is(err, ErrCardNotOwned):
		return http.StatusForbidden

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Messages for classified kinds are returned
// verbatim to the client; everything unclassified collapses to the generic
// internal message so no internal details leak.
func GetSafeErrorMessage(err error) string {
	switch {
	// Conflict errors
	case errors.Is(err, store.ErrEmailExists), errors.Is(err, store.ErrDuplicate):
		return "a user with this email already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID):
		return "invalid identifier"

	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		return "invalid data"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "card not found"

	case errors.Is(err, store.ErrNotFound):
		return "resource not found"

	// Authorization errors
	case errors.Is(err, ErrCardNotOwned):
		return "cannot delete another owner's card"

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return auth.ErrInvalidCredentials.Error()

	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, domain.ErrUnauthorized):
		return "authorization required"

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		return "invalid authorization token"

	// Default case for unknown errors
	default:
		return "internal server error"
	}
}

// HandleServiceError classifies err and writes the uniform error response.
// Handlers never pick error statuses themselves; every failure path funnels
// through this single boundary step. The underlying error is logged but only
// the classified message reaches the client.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// HandleValidationError writes the 400 response for a request that failed
// schema validation, naming the operation the data was invalid for.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
		"invalid data for "+operation, err)
}
