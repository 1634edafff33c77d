package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = "id, name, about, avatar, email, hashed_password, created_at"

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists when the email is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, about, avatar, email, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.About, user.Avatar,
		user.Email, user.HashedPassword, user.CreatedAt)
	if err != nil {
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	return nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound when no row matches.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
// Returns store.ErrUserNotFound when no row matches.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	return user, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile.
func (s *PostgresUserStore) UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error) {
	query := `
		UPDATE users SET name = $2, about = $3
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id, name, about))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	return user, nil
}

// UpdateAvatar implements store.UserStore.UpdateAvatar.
func (s *PostgresUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error) {
	query := `
		UPDATE users SET avatar = $2
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id, avatar))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	return user, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.About, &user.Avatar,
		&user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
