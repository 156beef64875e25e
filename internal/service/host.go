package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type HostService struct {
	repo   ports.HostRepo
	users  ports.UserRepo
	logger logger.Logger
}

func NewHostService(repo ports.HostRepo, users ports.UserRepo, logger logger.Logger) *HostService {
	return &HostService{repo: repo, users: users, logger: logger}
}

// Create registers a host. The creator becomes its first admin.
func (s *HostService) Create(ctx context.Context, creatorID string, input domain.CreateHostInput) (*domain.Host, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, creatorID); err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}

	host := &domain.Host{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Username:     input.Username,
		Description:  input.Description,
		Tagline:      input.Tagline,
		ContactEmail: input.ContactEmail,
		Type:         input.Type,
		Address:      input.Address,
		Location:     input.Location,
		ImageURL:     input.ImageURL,
		EventTypes:   input.EventTypes,
		CreatedAt:    time.Now().UTC(),
	}
	if host.EventTypes == nil {
		host.EventTypes = []string{}
	}

	if err := s.repo.CreateWithAdmin(ctx, host, creatorID); err != nil {
		return nil, fmt.Errorf("create host: %w", err)
	}

	s.logger.Info("host created",
		logger.String("host_id", host.ID),
		logger.String("username", host.Username),
		logger.String("admin_id", creatorID),
	)

	return host, nil
}

func (s *HostService) GetByID(ctx context.Context, id string) (*domain.Host, error) {
	return s.repo.GetByID(ctx, id)
}

// Update edits host settings. Admins only.
func (s *HostService) Update(ctx context.Context, hostID, actorID string, input domain.UpdateHostInput) (*domain.Host, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := requireMember(ctx, s.users, hostID, actorID, domain.MemberTypeAdmin); err != nil {
		return nil, err
	}

	host, err := s.repo.Update(ctx, hostID, input)
	if err != nil {
		return nil, fmt.Errorf("update host: %w", err)
	}
	return host, nil
}
