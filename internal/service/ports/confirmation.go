package ports

import (
	"context"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type ConfirmationStore interface {
	Save(ctx context.Context, token string, p domain.PendingRemoval, ttl time.Duration) error
	// Peek reads the pending removal without consuming it.
	Peek(ctx context.Context, token string) (*domain.PendingRemoval, error)
	// Take returns and deletes the pending removal in one step, so a token
	// is honoured at most once.
	Take(ctx context.Context, token string) (*domain.PendingRemoval, error)
}
