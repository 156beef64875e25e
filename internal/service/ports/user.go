package ports

import (
	"context"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetMemberType(ctx context.Context, userID, hostID string, t domain.HostMemberType) error
	Relationship(ctx context.Context, userID, otherID string) (domain.RelationshipState, error)
}

type SearchRepo interface {
	Search(ctx context.Context, query string, category domain.SearchCategory, limit int) ([]domain.SearchResult, error)
}
