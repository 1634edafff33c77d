package api

import (
	"net/http"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/store"
)

// UserHandler handles the protected user endpoints.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{userStore: userStore}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// GetMe handles GET /users/me, returning the caller's own record.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// GetByID handles GET /users/{userId}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "userId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me. The target is always the caller's
// own record; no id from the request is ever used.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleValidationError(w, r, err, "updating profile")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err, "updating profile")
		return
	}

	user, err := h.userStore.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateAvatar handles PATCH /users/me/avatar. As with UpdateProfile, the
// target is always the caller's own record.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req UpdateAvatarRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleValidationError(w, r, err, "updating avatar")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err, "updating avatar")
		return
	}

	user, err := h.userStore.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
