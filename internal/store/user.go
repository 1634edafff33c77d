package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's HashedPassword must
	// already be populated; the store never sees plaintext credentials.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user includes the password hash for credential checks.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile sets the name and about fields of the given user and
	// returns the updated record.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error)

	// UpdateAvatar sets the avatar field of the given user and returns the
	// updated record.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error)
}
