package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
)

// requireMember loads actorID and checks that they hold at least role min on hostID.
func requireMember(ctx context.Context, users ports.UserRepo, hostID, actorID string, min domain.HostMemberType) (*domain.User, error) {
	actor, err := users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown actor", domain.ErrForbidden)
		}
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor.MemberType(hostID).Privilege() < min.Privilege() {
		return nil, fmt.Errorf("%w: requires %s of host", domain.ErrForbidden, min)
	}
	return actor, nil
}

// attendeeState reads the user's guest record and request flag for one event.
func attendeeState(ctx context.Context, guests ports.GuestRepo, requests ports.RequestRepo, eventID, userID string) (*domain.EventGuest, domain.AttendeeState, error) {
	guest, err := guests.Get(ctx, eventID, userID)
	if err != nil && !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, "", fmt.Errorf("get guest: %w", err)
	}
	requested, err := requests.Exists(ctx, eventID, userID)
	if err != nil {
		return nil, "", fmt.Errorf("get request: %w", err)
	}
	return guest, domain.DeriveAttendeeState(guest, requested), nil
}

var rejections = []error{
	domain.ErrInvalidTransition,
	domain.ErrAlreadyCheckedIn,
	domain.ErrAlreadyOnGuestlist,
	domain.ErrAlreadyRequested,
	domain.ErrAlreadyMember,
	domain.ErrGuestlistFull,
	domain.ErrNotOnGuestlist,
	domain.ErrForbidden,
	domain.ErrActionInFlight,
	domain.ErrValidation,
	domain.ErrInvalidScanPayload,
}

func observe(machine, action string, err error) {
	outcome := "applied"
	if err != nil {
		outcome = "failed"
		for _, r := range rejections {
			if errors.Is(err, r) {
				outcome = "rejected"
				break
			}
		}
	}
	metrics.Transitions.WithLabelValues(machine, action, outcome).Inc()
}

// claimConfirmation consumes token only if it was issued to actorID for a
// removal of kind within scope. A mismatching request leaves the token alone.
func claimConfirmation(
	ctx context.Context,
	store ports.ConfirmationStore,
	token string,
	kind domain.RemovalKind,
	scope, actorID string,
) (*domain.PendingRemoval, error) {
	pending, err := store.Peek(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("peek confirmation: %w", err)
	}
	if pending.Kind != kind || pending.Scope != scope || pending.ActorID != actorID {
		return nil, domain.ErrConfirmationNotFound
	}

	if pending, err = store.Take(ctx, token); err != nil {
		return nil, fmt.Errorf("take confirmation: %w", err)
	}
	return pending, nil
}
