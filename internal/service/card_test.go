package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardbox/cardbox-go/internal/apperr"
	"github.com/cardbox/cardbox-go/internal/model"
)

func newTestCardService(t *testing.T) (*CardService, string, string) {
	t.Helper()

	users := &fakeUserStore{}
	for _, u := range []*model.User{
		{Name: "Ann", About: "Explorer", Avatar: "https://example.com/a.png", Email: "ann@example.com", PasswordHash: "h"},
		{Name: "Bob", About: "Diver", Avatar: "https://example.com/b.png", Email: "bob@example.com", PasswordHash: "h"},
	} {
		require.NoError(t, users.Create(context.Background(), u))
	}

	svc := NewCardService(newFakeCardStore(users), users)
	return svc, "user-1", "user-2"
}

func createCard(t *testing.T, svc *CardService, ownerID string) model.CardResponse {
	t.Helper()
	card, err := svc.Create(context.Background(), ownerID, model.CreateCardRequest{
		Name: "Lake",
		Link: "https://example.com/lake.jpg",
	})
	require.NoError(t, err)
	return card
}

func TestCreateCardBindsOwner(t *testing.T) {
	svc, ann, _ := newTestCardService(t)

	card := createCard(t, svc, ann)

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, ann, card.Owner.ID)
	assert.Equal(t, "ann@example.com", card.Owner.Email)
	assert.Empty(t, card.Likes)
}

func TestCreateCardValidation(t *testing.T) {
	svc, ann, _ := newTestCardService(t)

	_, err := svc.Create(context.Background(), ann, model.CreateCardRequest{Name: "L", Link: "https://example.com/x.jpg"})
	assert.Equal(t, apperr.KindValidation, apperr.Classify(err).Kind)

	_, err = svc.Create(context.Background(), ann, model.CreateCardRequest{Name: "Lake", Link: "ftp://example.com/x.jpg"})
	assert.Equal(t, apperr.KindValidation, apperr.Classify(err).Kind)
}

func TestDeleteMissingCard(t *testing.T) {
	svc, ann, _ := newTestCardService(t)

	_, err := svc.Delete(context.Background(), ann, "no-such-card")
	assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)
}

func TestDeleteForeignCardIsForbiddenNotMissing(t *testing.T) {
	svc, ann, bob := newTestCardService(t)
	card := createCard(t, svc, ann)

	_, err := svc.Delete(context.Background(), bob, card.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindAccessRights, apperr.Classify(err).Kind,
		"existing card owned by someone else must be forbidden, not not-found")

	// Still present.
	_, err = svc.AddLike(context.Background(), bob, card.ID)
	assert.NoError(t, err)
}

func TestAddLikeIdempotent(t *testing.T) {
	svc, ann, bob := newTestCardService(t)
	card := createCard(t, svc, ann)

	first, err := svc.AddLike(context.Background(), bob, card.ID)
	require.NoError(t, err)
	require.Len(t, first.Likes, 1)
	assert.Equal(t, bob, first.Likes[0].ID)

	second, err := svc.AddLike(context.Background(), bob, card.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Likes, second.Likes, "repeated like must not change the set")
}

func TestRemoveLikeAbsentMember(t *testing.T) {
	svc, ann, bob := newTestCardService(t)
	card := createCard(t, svc, ann)

	resp, err := svc.RemoveLike(context.Background(), bob, card.ID)
	require.NoError(t, err, "removing an absent like is a no-op, not an error")
	assert.Empty(t, resp.Likes)
}

func TestLikeMissingCard(t *testing.T) {
	svc, _, bob := newTestCardService(t)

	_, err := svc.AddLike(context.Background(), bob, "no-such-card")
	assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)

	_, err = svc.RemoveLike(context.Background(), bob, "no-such-card")
	assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)
}

// Full ownership scenario: Bob may not delete Ann's card but may like
// it; Ann's delete returns the card with Bob's like intact.
func TestOwnershipScenario(t *testing.T) {
	svc, ann, bob := newTestCardService(t)
	card := createCard(t, svc, ann)

	_, err := svc.Delete(context.Background(), bob, card.ID)
	assert.Equal(t, apperr.KindAccessRights, apperr.Classify(err).Kind)

	liked, err := svc.AddLike(context.Background(), bob, card.ID)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 1)
	assert.Equal(t, bob, liked.Likes[0].ID)

	deleted, err := svc.Delete(context.Background(), ann, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, deleted.ID)
	require.Len(t, deleted.Likes, 1)
	assert.Equal(t, bob, deleted.Likes[0].ID)

	_, err = svc.Delete(context.Background(), ann, card.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)
}

func TestListResolvesOwnersAndLikes(t *testing.T) {
	svc, ann, bob := newTestCardService(t)
	first := createCard(t, svc, ann)
	second := createCard(t, svc, bob)

	_, err := svc.AddLike(context.Background(), bob, first.ID)
	require.NoError(t, err)

	cards, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)

	byID := make(map[string]model.CardResponse)
	for _, c := range cards {
		byID[c.ID] = c
	}

	assert.Equal(t, ann, byID[first.ID].Owner.ID)
	require.Len(t, byID[first.ID].Likes, 1)
	assert.Equal(t, bob, byID[first.ID].Likes[0].ID)

	assert.Equal(t, bob, byID[second.ID].Owner.ID)
	assert.Empty(t, byID[second.ID].Likes)
}
