package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/config"
	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/service/auth"
	"github.com/mesto-project/mesto-api/internal/store"
)

// memoryUserStore is a minimal in-memory store.UserStore so the router can
// be exercised end to end without a database.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *memoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memoryUserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []*domain.User{}
	for _, u := range s.users {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memoryUserStore) UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user.Name = name
	user.About = about
	clone := *user
	return &clone, nil
}

func (s *memoryUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user.Avatar = avatar
	clone := *user
	return &clone, nil
}

// memoryCardStore is a minimal in-memory store.CardStore.
type memoryCardStore struct {
	mu    sync.Mutex
	cards map[uuid.UUID]*domain.Card
}

func newMemoryCardStore() *memoryCardStore {
	return &memoryCardStore{cards: make(map[uuid.UUID]*domain.Card)}
}

func (s *memoryCardStore) clone(card *domain.Card) *domain.Card {
	clone := *card
	clone.Likes = append([]uuid.UUID{}, card.Likes...)
	return &clone
}

func (s *memoryCardStore) Create(ctx context.Context, card *domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[card.ID] = s.clone(card)
	return nil
}

func (s *memoryCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := []*domain.Card{}
	for _, c := range s.cards {
		cards = append(cards, s.clone(c))
	}
	return cards, nil
}

func (s *memoryCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return s.clone(card), nil
}

func (s *memoryCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(s.cards, id)
	return nil
}

func (s *memoryCardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return s.clone(card), nil
}

func (s *memoryCardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return s.clone(card), nil
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3000, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:            "router-test-secret-that-is-32-chars-long",
			TokenLifetimeMinutes: 7 * 24 * 60,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:           cfg,
		logger:           slog.Default(),
		userStore:        newMemoryUserStore(),
		cardStore:        newMemoryCardStore(),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path string, payload interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestRouterRequiresAuthentication(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users/me"},
		{http.MethodPatch, "/users/me/avatar"},
		{http.MethodGet, "/cards"},
		{http.MethodPost, "/cards"},
		{http.MethodDelete, "/cards/" + uuid.New().String()},
		{http.MethodPut, "/cards/" + uuid.New().String() + "/likes"},
	}

	for _, route := range protected {
		recorder := doJSON(t, router, route.method, route.path, nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code,
			"%s %s must require authentication", route.method, route.path)
		assert.Contains(t, recorder.Body.String(), "authorization required")
	}
}

func TestRouterAuthFlow(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	// Register.
	signup := doJSON(t, router, http.MethodPost, "/signup", map[string]string{
		"email":    "jacques@example.com",
		"password": "sea-and-exploration",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	// Sign in and capture the auth cookie.
	signin := doJSON(t, router, http.MethodPost, "/signin", map[string]string{
		"email":    "jacques@example.com",
		"password": "sea-and-exploration",
	})
	require.Equal(t, http.StatusOK, signin.Code)

	cookies := signin.Result().Cookies()
	require.Len(t, cookies, 1)
	authCookie := cookies[0]
	require.Equal(t, shared.AuthCookieName, authCookie.Name)

	// The cookie grants access to protected routes.
	me := doJSON(t, router, http.MethodGet, "/users/me", nil, authCookie)
	require.Equal(t, http.StatusOK, me.Code)

	var profile domain.User
	require.NoError(t, json.NewDecoder(me.Body).Decode(&profile))
	assert.Equal(t, "jacques@example.com", profile.Email)

	// Create a card and like it through the router.
	created := doJSON(t, router, http.MethodPost, "/cards", map[string]string{
		"name": "Baikal",
		"link": "https://example.com/baikal.jpg",
	}, authCookie)
	require.Equal(t, http.StatusCreated, created.Code)

	var card domain.Card
	require.NoError(t, json.NewDecoder(created.Body).Decode(&card))
	assert.Equal(t, profile.ID, card.Owner)

	liked := doJSON(t, router, http.MethodPut, "/cards/"+card.ID.String()+"/likes", nil, authCookie)
	require.Equal(t, http.StatusOK, liked.Code)

	var likedCard domain.Card
	require.NoError(t, json.NewDecoder(liked.Body).Decode(&likedCard))
	assert.Equal(t, []uuid.UUID{profile.ID}, likedCard.Likes)
}

func TestRouterRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := doJSON(t, router, http.MethodGet, "/users/me", nil, &http.Cookie{
		Name:  shared.AuthCookieName,
		Value: "not-a-valid-token",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid authorization token")
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := doJSON(t, router, http.MethodGet, "/no-such-route", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "requested resource not found", body["message"])
}

func TestRouterHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
