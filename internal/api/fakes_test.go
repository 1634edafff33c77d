package api

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for handler tests.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	// forcedErr, when set, is returned by every method to exercise the
	// internal-error path.
	forcedErr error
}

var _ store.UserStore = (*fakeUserStore)(nil)

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	users := []*domain.User{}
	for _, u := range f.users {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user.Name = name
	user.About = about
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user.Avatar = avatar
	clone := *user
	return &clone, nil
}

// fakeCardStore is an in-memory store.CardStore with the same idempotent
// like semantics as the PostgreSQL implementation.
type fakeCardStore struct {
	mu    sync.Mutex
	cards map[uuid.UUID]*domain.Card

	forcedErr error
}

var _ store.CardStore = (*fakeCardStore)(nil)

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: make(map[uuid.UUID]*domain.Card)}
}

func cloneCard(card *domain.Card) *domain.Card {
	clone := *card
	clone.Likes = append([]uuid.UUID{}, card.Likes...)
	return &clone
}

func (f *fakeCardStore) Create(ctx context.Context, card *domain.Card) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.cards[card.ID] = cloneCard(card)
	return nil
}

func (f *fakeCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	cards := []*domain.Card{}
	for _, c := range f.cards {
		cards = append(cards, cloneCard(c))
	}
	return cards, nil
}

func (f *fakeCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	card, ok := f.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return cloneCard(card), nil
}

func (f *fakeCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(f.cards, id)
	return nil
}

func (f *fakeCardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	card, ok := f.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return cloneCard(card), nil
}

func (f *fakeCardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	card, ok := f.cards[cardID]
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
	return cloneCard(card), nil
}
