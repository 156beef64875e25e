package service

import (
	"context"
	"testing"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice", DisplayName: "Alice"})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.GenderPreferNotToSay, user.Gender)
	assert.Empty(t, user.AssociatedHosts())
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "a"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Relationship(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Relationship(mock.Anything, "u1", "u2").Return(domain.RelationshipRequestSent, nil)

	state, err := svc.Relationship(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, domain.RelationshipRequestSent, state)

	_, err = svc.Relationship(context.Background(), "u1", "u1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSearchService_Search(t *testing.T) {
	repo := mocks.NewMockSearchRepo(t)
	svc := NewSearchService(repo)

	repo.EXPECT().Search(mock.Anything, "sig", domain.SearchHosts, searchLimit).Return(nil, nil)

	res, err := svc.Search(context.Background(), "  sig ", domain.SearchHosts)

	require.NoError(t, err)
	assert.Equal(t, []domain.SearchResult{}, res)

	_, err = svc.Search(context.Background(), "sig", "places")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Search(context.Background(), "   ", domain.SearchEvents)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
