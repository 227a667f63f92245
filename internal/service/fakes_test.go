package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cardbox/cardbox-go/internal/model"
	"github.com/cardbox/cardbox-go/internal/repository"
)

// In-memory store fakes implementing the UserStore and CardStore
// collaborator interfaces.

type fakeUserStore struct {
	users []*model.User
	seq   int
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now().UTC()
	clone := *user
	f.users = append(f.users, &clone)
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, len(f.users))
	for i, u := range f.users {
		result[i] = *u
	}
	return result, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id, name, about string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Name = name
			u.About = about
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Avatar = avatar
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeCardStore struct {
	users *fakeUserStore
	cards []*model.Card
	likes map[string][]string
	seq   int
}

func newFakeCardStore(users *fakeUserStore) *fakeCardStore {
	return &fakeCardStore{users: users, likes: make(map[string][]string)}
}

func (f *fakeCardStore) Create(_ context.Context, card *model.Card) error {
	f.seq++
	card.ID = fmt.Sprintf("card-%d", f.seq)
	card.CreatedAt = time.Now().UTC()
	clone := *card
	f.cards = append(f.cards, &clone)
	return nil
}

func (f *fakeCardStore) GetByID(_ context.Context, id string) (*model.Card, error) {
	for _, c := range f.cards {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, repository.ErrCardNotFound
}

func (f *fakeCardStore) List(_ context.Context) ([]model.Card, error) {
	result := make([]model.Card, len(f.cards))
	for i, c := range f.cards {
		result[i] = *c
	}
	return result, nil
}

func (f *fakeCardStore) Delete(_ context.Context, id string) error {
	for i, c := range f.cards {
		if c.ID == id {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			delete(f.likes, id)
			return nil
		}
	}
	return repository.ErrCardNotFound
}

func (f *fakeCardStore) AddLike(_ context.Context, cardID, userID string) error {
	if !slices.Contains(f.likes[cardID], userID) {
		f.likes[cardID] = append(f.likes[cardID], userID)
	}
	return nil
}

func (f *fakeCardStore) RemoveLike(_ context.Context, cardID, userID string) error {
	if i := slices.Index(f.likes[cardID], userID); i >= 0 {
		f.likes[cardID] = append(f.likes[cardID][:i], f.likes[cardID][i+1:]...)
	}
	return nil
}

func (f *fakeCardStore) ListLikers(ctx context.Context, cardID string) ([]model.User, error) {
	var users []model.User
	for _, id := range f.likes[cardID] {
		u, err := f.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeCardStore) LikersByCard(ctx context.Context) (map[string][]model.User, error) {
	result := make(map[string][]model.User)
	for cardID := range f.likes {
		users, err := f.ListLikers(ctx, cardID)
		if err != nil {
			return nil, err
		}
		if len(users) > 0 {
			result[cardID] = users
		}
	}
	return result, nil
}
