package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	gender := input.Gender
	if gender == "" {
		gender = domain.GenderPreferNotToSay
	}

	user := &domain.User{
		ID:              uuid.New().String(),
		Username:        input.Username,
		DisplayName:     input.DisplayName,
		University:      input.University,
		Age:             input.Age,
		Gender:          gender,
		TelegramChatID:  input.TelegramChatID,
		HostMemberTypes: map[string]domain.HostMemberType{},
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Relationship returns userID's view of its relationship with otherID.
func (s *UserService) Relationship(ctx context.Context, userID, otherID string) (domain.RelationshipState, error) {
	if userID == otherID {
		return "", fmt.Errorf("%w: relationship with self", domain.ErrValidation)
	}
	return s.repo.Relationship(ctx, userID, otherID)
}
