package service

import (
	"context"

	"github.com/cardbox/cardbox-go/internal/model"
)

// UserStore is the persistence collaborator for user records.
// Implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error)
}

// CardStore is the persistence collaborator for card records and their
// like sets. AddLike and RemoveLike must be atomic set operations, not
// read-modify-write round trips.
// Implemented by repository.CardRepository.
type CardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id string) (*model.Card, error)
	List(ctx context.Context) ([]model.Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) error
	RemoveLike(ctx context.Context, cardID, userID string) error
	ListLikers(ctx context.Context, cardID string) ([]model.User, error)
	LikersByCard(ctx context.Context) (map[string][]model.User, error)
}
