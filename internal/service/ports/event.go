package ports

import (
	"context"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	ListByHost(ctx context.Context, hostID string) ([]domain.Event, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Event, error)
}

type FavoriteRepo interface {
	Add(ctx context.Context, f *domain.Favorite) error
	Remove(ctx context.Context, userID, eventID string) error
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	ListEventIDs(ctx context.Context, userID string) ([]string, error)
}
