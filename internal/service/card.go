package service

import (
	"context"
	"errors"

	"github.com/cardbox/cardbox-go/internal/apperr"
	"github.com/cardbox/cardbox-go/internal/model"
	"github.com/cardbox/cardbox-go/internal/repository"
)

// CardService handles card creation, deletion, and like toggling.
type CardService struct {
	cards CardStore
	users UserStore
}

// NewCardService creates a new CardService.
func NewCardService(cards CardStore, users UserStore) *CardService {
	return &CardService{cards: cards, users: users}
}

// authorizeOwner allows a mutation only when the authenticated subject
// is the card's recorded owner. Pure comparison; denial is distinct
// from not-found.
func authorizeOwner(subjectID, ownerID string) error {
	if subjectID != ownerID {
		return apperr.AccessRights("cannot modify another user's card")
	}
	return nil
}

// List returns all cards with owners and like sets resolved.
func (s *CardService) List(ctx context.Context) ([]model.CardResponse, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	likers, err := s.cards.LikersByCard(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.CardResponse, 0, len(cards))
	for _, c := range cards {
		owner, ok := byID[c.OwnerID]
		if !ok {
			return nil, errors.New("card owner missing from users table")
		}
		result = append(result, assemble(c, owner, likers[c.ID]))
	}
	return result, nil
}

// Create makes a new card owned by the authenticated subject.
func (s *CardService) Create(ctx context.Context, ownerID string, req model.CreateCardRequest) (model.CardResponse, error) {
	if err := validateTextField("name", req.Name); err != nil {
		return model.CardResponse{}, err
	}
	if err := validateURLField("link", req.Link); err != nil {
		return model.CardResponse{}, err
	}

	card := &model.Card{
		Name:    req.Name,
		Link:    req.Link,
		OwnerID: ownerID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return model.CardResponse{}, err
	}

	return s.resolve(ctx, card)
}

// Delete removes a card owned by the subject and returns its resolved
// snapshot. The existence check strictly precedes the ownership check:
// deleting a nonexistent card reports not-found even when it would also
// have failed ownership.
func (s *CardService) Delete(ctx context.Context, subjectID, cardID string) (model.CardResponse, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return model.CardResponse{}, apperr.NotFound("card not found")
		}
		return model.CardResponse{}, err
	}

	if err := authorizeOwner(subjectID, card.OwnerID); err != nil {
		return model.CardResponse{}, err
	}

	// Snapshot before deleting; the cascade wipes the like set.
	snapshot, err := s.resolve(ctx, card)
	if err != nil {
		return model.CardResponse{}, err
	}

	if err := s.cards.Delete(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return model.CardResponse{}, apperr.NotFound("card not found")
		}
		return model.CardResponse{}, err
	}

	return snapshot, nil
}

// AddLike adds the subject to the card's like set and returns the
// card's current state. Liking an already-liked card is a no-op, not an
// error.
func (s *CardService) AddLike(ctx context.Context, subjectID, cardID string) (model.CardResponse, error) {
	return s.toggleLike(ctx, cardID, func(ctx context.Context) error {
		return s.cards.AddLike(ctx, cardID, subjectID)
	})
}

// RemoveLike removes the subject from the card's like set and returns
// the card's current state. Removing an absent like is a no-op.
func (s *CardService) RemoveLike(ctx context.Context, subjectID, cardID string) (model.CardResponse, error) {
	return s.toggleLike(ctx, cardID, func(ctx context.Context) error {
		return s.cards.RemoveLike(ctx, cardID, subjectID)
	})
}

func (s *CardService) toggleLike(ctx context.Context, cardID string, op func(context.Context) error) (model.CardResponse, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return model.CardResponse{}, apperr.NotFound("card not found")
		}
		return model.CardResponse{}, err
	}

	if err := op(ctx); err != nil {
		return model.CardResponse{}, err
	}

	return s.resolve(ctx, card)
}

// resolve expands a card's owner id and like set into full user
// objects.
func (s *CardService) resolve(ctx context.Context, card *model.Card) (model.CardResponse, error) {
	owner, err := s.users.GetByID(ctx, card.OwnerID)
	if err != nil {
		return model.CardResponse{}, err
	}

	likers, err := s.cards.ListLikers(ctx, card.ID)
	if err != nil {
		return model.CardResponse{}, err
	}

	return assemble(*card, *owner, likers), nil
}

func assemble(card model.Card, owner model.User, likers []model.User) model.CardResponse {
	likes := make([]model.UserResponse, 0, len(likers))
	for _, u := range likers {
		likes = append(likes, u.ToResponse())
	}

	return model.CardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     owner.ToResponse(),
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}
