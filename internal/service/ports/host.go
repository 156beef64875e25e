package ports

import (
	"context"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type HostRepo interface {
	// CreateWithAdmin stores h and links adminID to it as a joined admin.
	CreateWithAdmin(ctx context.Context, h *domain.Host, adminID string) error
	GetByID(ctx context.Context, id string) (*domain.Host, error)
	Update(ctx context.Context, id string, in domain.UpdateHostInput) (*domain.Host, error)
}

type MemberRepo interface {
	CreateLink(ctx context.Context, link *domain.HostUserLink) error
	GetLink(ctx context.Context, hostID, userID string) (*domain.HostUserLink, error)
	// Join and Remove change the link and the user's role map together.
	Join(ctx context.Context, hostID, userID string, t domain.HostMemberType) error
	Remove(ctx context.Context, hostID, userID string) error
	DeleteLink(ctx context.Context, hostID, userID string) error
	List(ctx context.Context, hostID string) ([]domain.HostMember, error)
}
