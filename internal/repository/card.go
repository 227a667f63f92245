package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cardbox/cardbox-go/internal/model"
)

var ErrCardNotFound = errors.New("card not found")

// CardRepository handles card persistence operations, including the
// card_likes set.
type CardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a new card, assigning it a fresh id.
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	card.ID = uuid.NewString()
	card.CreatedAt = time.Now().UTC()

	query := `INSERT INTO cards (id, name, link, owner_id, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		card.ID, card.Name, card.Link, card.OwnerID, card.CreatedAt,
	)
	return err
}

// GetByID retrieves a card by its ID.
func (r *CardRepository) GetByID(ctx context.Context, id string) (*model.Card, error) {
	query := `SELECT id, name, link, owner_id, created_at FROM cards WHERE id = ?`

	card := &model.Card{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return card, nil
}

// List retrieves all cards, newest first.
func (r *CardRepository) List(ctx context.Context) ([]model.Card, error) {
	query := `SELECT id, name, link, owner_id, created_at FROM cards ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

// Delete removes a card and, via cascade, its like set. Returns
// ErrCardNotFound if no such card exists.
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

// AddLike adds userID to the card's like set. The insert is a single
// atomic set operation: a like that is already present is ignored, so a
// repeated add changes nothing and reports no error.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) error {
	query := `INSERT IGNORE INTO card_likes (card_id, user_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, cardID, userID)
	return err
}

// RemoveLike removes userID from the card's like set. Removing an
// absent member is a no-op.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) error {
	query := `DELETE FROM card_likes WHERE card_id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, cardID, userID)
	return err
}

// ListLikers retrieves the users in a card's like set, in like order.
func (r *CardRepository) ListLikers(ctx context.Context, cardID string) ([]model.User, error) {
	query := `SELECT u.id, u.name, u.about, u.avatar, u.email, u.password_hash, u.created_at
		FROM card_likes cl
		JOIN users u ON u.id = cl.user_id
		WHERE cl.card_id = ?
		ORDER BY cl.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordHash, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// LikersByCard retrieves the like sets of all cards in one query, keyed
// by card id. Used to resolve a full card listing without a query per
// card.
func (r *CardRepository) LikersByCard(ctx context.Context) (map[string][]model.User, error) {
	query := `SELECT cl.card_id, u.id, u.name, u.about, u.avatar, u.email, u.password_hash, u.created_at
		FROM card_likes cl
		JOIN users u ON u.id = cl.user_id
		ORDER BY cl.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likers := make(map[string][]model.User)
	for rows.Next() {
		var cardID string
		var u model.User
		if err := rows.Scan(
			&cardID, &u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordHash, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		likers[cardID] = append(likers[cardID], u)
	}

	return likers, rows.Err()
}
