package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mesto-project/mesto-api/internal/api"
	apiMiddleware "github.com/mesto-project/mesto-api/internal/api/middleware"
	"github.com/mesto-project/mesto-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Signup and signin are public; everything else sits behind
// the cookie authentication middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		&app.config.Auth,
	)
	userHandler := api.NewUserHandler(app.userStore)
	cardHandler := api.NewCardHandler(app.cardStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public)
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// User endpoints
		r.Get("/users", userHandler.List)
		r.Get("/users/me", userHandler.GetMe)
		r.Get("/users/{userId}", userHandler.GetByID)
		r.Patch("/users/me", userHandler.UpdateProfile)
		r.Patch("/users/me/avatar", userHandler.UpdateAvatar)

		// Card endpoints
		r.Get("/cards", cardHandler.List)
		r.Post("/cards", cardHandler.Create)
		r.Delete("/cards/{cardId}", cardHandler.Delete)
		r.Put("/cards/{cardId}/likes", cardHandler.Like)
		r.Delete("/cards/{cardId}/likes", cardHandler.Unlike)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Unknown routes answer with the same error body shape as everything else.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "requested resource not found")
	})

	return r
}
