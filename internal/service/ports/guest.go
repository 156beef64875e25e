package ports

import (
	"context"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type GuestRepo interface {
	// Add inserts g unless the event already holds limit guests.
	Add(ctx context.Context, g *domain.EventGuest, limit *int) error
	Get(ctx context.Context, eventID, guestID string) (*domain.EventGuest, error)
	List(ctx context.Context, eventID string) ([]domain.EventGuest, error)
	SetStatus(ctx context.Context, eventID, guestID string, status domain.GuestStatus) error
	Delete(ctx context.Context, eventID, guestID string) error
}

type RequestRepo interface {
	Create(ctx context.Context, r *domain.JoinRequest) error
	Exists(ctx context.Context, eventID, userID string) (bool, error)
	Delete(ctx context.Context, eventID, userID string) error
	List(ctx context.Context, eventID string) ([]domain.JoinRequest, error)
}
