package api

import (
	"log/slog"
	"net/http"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/config"
	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/service/auth"
	"github.com/mesto-project/mesto-api/internal/store"
)

// AuthHandler handles the public authentication endpoints: signup and signin.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	cookieSecure     bool
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	authCfg *config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		cookieSecure:     authCfg.CookieSecure,
	}
}

// Signup handles POST /signup. The password is hashed before the user is
// persisted and neither the password nor its hash appears in the response.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleValidationError(w, r, err, "creating user")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err, "creating user")
		return
	}

	user, err := domain.NewUser(req.Email, req.Password, req.Name, req.About, req.Avatar)
	if err != nil {
		HandleValidationError(w, r, err, "creating user")
		return
	}

	hash, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		HandleServiceError(w, r, err)
		return
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Signin handles POST /signin. An unknown email and a wrong password produce
// the identical 401 response so accounts cannot be enumerated. On success the
// identity token is set as an HTTP-only cookie; it never appears in the body.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleValidationError(w, r, err, "signing in")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err, "signing in")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			HandleServiceError(w, r, auth.ErrInvalidCredentials)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		HandleServiceError(w, r, auth.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		HandleServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     shared.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.jwtService.TokenLifetime().Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	shared.RespondWithJSON(w, r, http.StatusOK, SigninResponse{Message: "authentication successful"})
}
