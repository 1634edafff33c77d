package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	Create(ctx context.Context, card *domain.Card) error

	// List retrieves all cards, newest first, with their likers sets populated.
	List(ctx context.Context) ([]*domain.Card, error)

	// GetByID retrieves a card by its unique ID with its likers set populated.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// Delete removes a card from the store by its ID. Likes are removed with
	// it through the schema's cascading delete.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLike inserts userID into the card's likers set. The operation is a
	// single atomic statement and is idempotent: liking an already-liked card
	// succeeds without effect. Returns the updated card.
	// Returns ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)

	// RemoveLike deletes userID from the card's likers set. Removing an
	// absent like is a no-op. Returns the updated card.
	// Returns ErrCardNotFound if the card does not exist.
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
}
