package ports

import (
	"context"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type Notifier interface {
	NotifyAddedToGuestlist(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyCheckedIn(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyHostInvite(ctx context.Context, user *domain.User, host *domain.Host)
}
