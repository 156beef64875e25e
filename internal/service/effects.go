package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
	"github.com/Peytose/mixer-app-sub003/internal/transition"
	"github.com/wb-go/wbf/logger"
)

// effectRunner performs transition effects against the repositories in order.
// It stops at the first failure and does not retry: the user sees the error
// and the next snapshot shows the true remote state.
type effectRunner struct {
	guests   ports.GuestRepo
	requests ports.RequestRepo
	members  ports.MemberRepo
	users    ports.UserRepo
	logger   logger.Logger
}

func (r *effectRunner) apply(ctx context.Context, effects []transition.Effect) error {
	for _, e := range effects {
		if err := r.applyOne(ctx, e); err != nil {
			r.logger.Error("remote write failed",
				logger.String("effect", fmt.Sprintf("%T", e)),
				logger.String("error", err.Error()),
			)
			return err
		}
	}
	return nil
}

func (r *effectRunner) applyOne(ctx context.Context, e transition.Effect) error {
	switch e := e.(type) {
	case transition.CreateRequest:
		req := &domain.JoinRequest{EventID: e.EventID, UserID: e.UserID, Timestamp: time.Now().UTC()}
		if err := r.requests.Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}
	case transition.DeleteRequest:
		if err := r.requests.Delete(ctx, e.EventID, e.UserID); err != nil {
			return fmt.Errorf("delete request: %w", err)
		}
	case transition.AddGuest:
		g := e.Guest
		if err := r.guests.Add(ctx, &g, e.Limit); err != nil {
			return fmt.Errorf("add guest: %w", err)
		}
	case transition.DeleteGuest:
		if err := r.guests.Delete(ctx, e.EventID, e.GuestID); err != nil {
			return fmt.Errorf("delete guest: %w", err)
		}
	case transition.SetGuestStatus:
		if err := r.guests.SetStatus(ctx, e.EventID, e.GuestID, e.Status); err != nil {
			return fmt.Errorf("set guest status: %w", err)
		}
	case transition.CreateMemberLink:
		link := e.Link
		if err := r.members.CreateLink(ctx, &link); err != nil {
			return fmt.Errorf("create member link: %w", err)
		}
	case transition.JoinMember:
		if err := r.members.Join(ctx, e.HostID, e.UserID, e.Type); err != nil {
			return fmt.Errorf("join member: %w", err)
		}
	case transition.DeleteMemberLink:
		if err := r.members.DeleteLink(ctx, e.HostID, e.UserID); err != nil {
			return fmt.Errorf("delete member link: %w", err)
		}
	case transition.SetMemberType:
		if err := r.users.SetMemberType(ctx, e.UserID, e.HostID, e.Type); err != nil {
			return fmt.Errorf("set member type: %w", err)
		}
	case transition.RemoveMember:
		if err := r.members.Remove(ctx, e.HostID, e.UserID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}
	default:
		return fmt.Errorf("unknown effect %T", e)
	}
	return nil
}
