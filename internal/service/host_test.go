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

func TestHostService_Create_CreatorBecomesAdmin(t *testing.T) {
	hostRepo := mocks.NewMockHostRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewHostService(hostRepo, userRepo, newTestLogger(t))

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	hostRepo.EXPECT().CreateWithAdmin(mock.Anything, mock.MatchedBy(func(h *domain.Host) bool {
		return h.Username == "sigmachi" && h.ID != ""
	}), "u1").Return(nil)

	host, err := svc.Create(context.Background(), "u1", domain.CreateHostInput{
		Name:     "Sigma Chi",
		Username: "sigmachi",
		Type:     domain.HostTypeFraternity,
	})

	require.NoError(t, err)
	assert.Equal(t, "Sigma Chi", host.Name)
}

func TestHostService_Create_UsernameTaken(t *testing.T) {
	hostRepo := mocks.NewMockHostRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewHostService(hostRepo, userRepo, newTestLogger(t))

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	hostRepo.EXPECT().CreateWithAdmin(mock.Anything, mock.Anything, "u1").Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), "u1", domain.CreateHostInput{
		Name:     "Sigma Chi",
		Username: "sigmachi",
		Type:     domain.HostTypeFraternity,
	})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestHostService_Create_InvalidUsername(t *testing.T) {
	svc := NewHostService(mocks.NewMockHostRepo(t), mocks.NewMockUserRepo(t), newTestLogger(t))

	_, err := svc.Create(context.Background(), "u1", domain.CreateHostInput{
		Name:     "Sigma Chi",
		Username: "sigma chi!",
		Type:     domain.HostTypeFraternity,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHostService_Update_RequiresAdmin(t *testing.T) {
	hostRepo := mocks.NewMockHostRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewHostService(hostRepo, userRepo, newTestLogger(t))
	tagline := "New"

	userRepo.EXPECT().GetByID(mock.Anything, "mod").Return(hostUser("mod", domain.MemberTypeModerator), nil)

	_, err := svc.Update(context.Background(), "h1", "mod", domain.UpdateHostInput{Tagline: &tagline})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
