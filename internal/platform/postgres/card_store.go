package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
//
// The likers set lives in the card_likes table keyed on (card_id, user_id);
// AddLike and RemoveLike are each a single atomic statement, which gives the
// idempotent set-add/set-remove semantics the like endpoints rely on.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Create implements store.CardStore.Create.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	query := `
		INSERT INTO cards (id, name, link, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		card.ID, card.Name, card.Link, card.Owner, card.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// List implements store.CardStore.List.
// A single left join brings the likers along; rows are merged per card.
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	query := `
		SELECT c.id, c.name, c.link, c.owner_id, c.created_at, l.user_id
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		ORDER BY c.created_at DESC, c.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	cards := []*domain.Card{}
	var current *domain.Card
	for rows.Next() {
		var (
			card  domain.Card
			liker uuid.NullUUID
		)
		if err := rows.Scan(&card.ID, &card.Name, &card.Link, &card.Owner, &card.CreatedAt, &liker); err != nil {
			return nil, MapError(err)
		}

		if current == nil || current.ID != card.ID {
			card.Likes = []uuid.UUID{}
			cards = append(cards, &card)
			current = cards[len(cards)-1]
		}
		if liker.Valid {
			current.Likes = append(current.Likes, liker.UUID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// GetByID implements store.CardStore.GetByID.
// Returns store.ErrCardNotFound when no row matches.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `
		SELECT c.id, c.name, c.link, c.owner_id, c.created_at, l.user_id
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		WHERE c.id = $1`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	var card *domain.Card
	for rows.Next() {
		var (
			row   domain.Card
			liker uuid.NullUUID
		)
		if err := rows.Scan(&row.ID, &row.Name, &row.Link, &row.Owner, &row.CreatedAt, &liker); err != nil {
			return nil, MapError(err)
		}
		if card == nil {
			row.Likes = []uuid.UUID{}
			card = &row
		}
		if liker.Valid {
			card.Likes = append(card.Likes, liker.UUID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if card == nil {
		return nil, store.ErrCardNotFound
	}

	return card, nil
}

// Delete implements store.CardStore.Delete.
// Likes cascade through the card_likes foreign key.
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "card"); err != nil {
		return store.ErrCardNotFound
	}

	return nil
}

// AddLike implements store.CardStore.AddLike.
// ON CONFLICT DO NOTHING makes a repeated like a no-op rather than an error.
func (s *PostgresCardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	query := `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (card_id, user_id) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, cardID, userID); err != nil {
		// The card_id foreign key failing means the card does not exist.
		if IsForeignKeyViolation(err) {
			return nil, store.ErrCardNotFound
		}
		return nil, MapError(err)
	}

	return s.GetByID(ctx, cardID)
}

// RemoveLike implements store.CardStore.RemoveLike.
// Deleting an absent like affects zero rows and is not an error.
func (s *PostgresCardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	query := `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`

	if _, err := s.db.ExecContext(ctx, query, cardID, userID); err != nil {
		return nil, MapError(err)
	}

	return s.GetByID(ctx, cardID)
}
