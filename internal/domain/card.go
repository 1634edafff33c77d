package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty or nil.
	ErrCardOwnerEmpty = errors.New("card owner ID cannot be empty")

	// ErrCardNameLength is returned when a card name is outside the 2-30 bound.
	ErrCardNameLength = errors.New("card name must be between 2 and 30 characters")

	// ErrCardInvalidLink is returned when a card link is not a valid URL.
	ErrCardInvalidLink = errors.New("card link must be a valid URL")
)

// Card represents a photo card posted by a user. Likes is the set of user IDs
// that have liked the card; it never contains duplicates.
type Card struct {
	ID        uuid.UUID   `json:"_id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	Owner     uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewCard creates a new Card owned by the given user.
// It generates a new UUID for the card ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewCard(owner uuid.UUID, name, link string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		Name:      name,
		Link:      link,
		Owner:     owner,
		Likes:     []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Owner == uuid.Nil {
		return ErrCardOwnerEmpty
	}

	if !lengthBetween(c.Name, 2, 30) {
		return ErrCardNameLength
	}

	if !ValidURL(c.Link) {
		return ErrCardInvalidLink
	}

	return nil
}

// LikedBy reports whether the given user is in the card's likers set.
func (c *Card) LikedBy(userID uuid.UUID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ValidURL reports whether s is an absolute http(s) URL.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
