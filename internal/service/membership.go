package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	"github.com/Peytose/mixer-app-sub003/internal/sections"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
	"github.com/Peytose/mixer-app-sub003/internal/transition"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type MembershipService struct {
	hosts         ports.HostRepo
	members       ports.MemberRepo
	users         ports.UserRepo
	confirmations ports.ConfirmationStore
	notifier      ports.Notifier
	effects       *effectRunner
	gate          gate
	confirmTTL    time.Duration
	logger        logger.Logger
}

func NewMembershipService(
	hosts ports.HostRepo,
	members ports.MemberRepo,
	users ports.UserRepo,
	confirmations ports.ConfirmationStore,
	notifier ports.Notifier,
	confirmTTL time.Duration,
	logger logger.Logger,
) *MembershipService {
	return &MembershipService{
		hosts:         hosts,
		members:       members,
		users:         users,
		confirmations: confirmations,
		notifier:      notifier,
		effects: &effectRunner{
			members: members,
			users:   users,
			logger:  logger,
		},
		confirmTTL: confirmTTL,
		logger:     logger,
	}
}

// Invite links userID to the host as an invited member.
func (s *MembershipService) Invite(ctx context.Context, hostID, actorID, userID string) (*domain.HostUserLink, error) {
	host, err := s.hosts.GetByID(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("get host: %w", err)
	}
	actor, err := requireMember(ctx, s.users, hostID, actorID, domain.MemberTypeMember)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var link domain.HostUserLink
	err = s.gate.do(func() error {
		existing, err := s.members.GetLink(ctx, hostID, userID)
		if err != nil && !errors.Is(err, domain.ErrMemberNotFound) {
			return fmt.Errorf("get member link: %w", err)
		}

		effects, err := transition.Invite(hostID, userID, actor.MemberType(hostID), existing, time.Now())
		if err != nil {
			return err
		}
		if err = s.effects.apply(ctx, effects); err != nil {
			return err
		}
		link = effects[0].(transition.CreateMemberLink).Link
		return nil
	}, "invite", hostID, userID)
	observe("member", "invite", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("member invited",
		logger.String("host_id", hostID),
		logger.String("user_id", userID),
		logger.String("actor_id", actorID),
	)

	go s.notifier.NotifyHostInvite(context.WithoutCancel(ctx), user, host)

	return &link, nil
}

// Accept joins an invited user. Accepting an already joined link succeeds
// without writing anything.
func (s *MembershipService) Accept(ctx context.Context, hostID, userID string) error {
	err := s.gate.do(func() error {
		link, err := s.members.GetLink(ctx, hostID, userID)
		if err != nil {
			return fmt.Errorf("get member link: %w", err)
		}
		return s.effects.apply(ctx, transition.Accept(link))
	}, "accept", hostID, userID)
	observe("member", "accept", err)
	if err != nil {
		return err
	}

	s.logger.Info("invitation accepted",
		logger.String("host_id", hostID),
		logger.String("user_id", userID),
	)
	return nil
}

func (s *MembershipService) Decline(ctx context.Context, hostID, userID string) error {
	err := s.gate.do(func() error {
		link, err := s.members.GetLink(ctx, hostID, userID)
		if err != nil {
			return fmt.Errorf("get member link: %w", err)
		}
		effects, err := transition.Decline(link)
		if err != nil {
			return err
		}
		return s.effects.apply(ctx, effects)
	}, "decline", hostID, userID)
	observe("member", "decline", err)
	return err
}

// ListMembers splits the member list into pending invitations and joined members.
func (s *MembershipService) ListMembers(ctx context.Context, hostID string) (sections.MemberBuckets, error) {
	members, err := s.members.List(ctx, hostID)
	if err != nil {
		return sections.MemberBuckets{}, fmt.Errorf("list members: %w", err)
	}
	return sections.BuildMembers(members), nil
}

// Members loads a full snapshot for synchronization adapters.
func (s *MembershipService) Members(ctx context.Context, hostID string) ([]domain.HostMember, error) {
	return s.members.List(ctx, hostID)
}

// Actions returns what actorID is offered on the member row of userID.
func (s *MembershipService) Actions(ctx context.Context, hostID, actorID, userID string) (transition.MemberActions, error) {
	actor, target, link, err := s.pair(ctx, hostID, actorID, userID)
	if err != nil {
		return transition.MemberActions{}, err
	}
	return transition.ActionsFor(actor, target, link.Status), nil
}

func (s *MembershipService) AssignRole(ctx context.Context, hostID, actorID, userID string, role domain.HostMemberType) error {
	err := s.gate.do(func() error {
		actor, target, link, err := s.pair(ctx, hostID, actorID, userID)
		if err != nil {
			return err
		}
		effects, err := transition.AssignRole(hostID, userID, actor, target, link.Status, role)
		if err != nil {
			return err
		}
		return s.effects.apply(ctx, effects)
	}, "assign", hostID, userID)
	observe("member", "assign", err)
	if err != nil {
		return err
	}

	s.logger.Info("member role assigned",
		logger.String("host_id", hostID),
		logger.String("user_id", userID),
		logger.String("role", string(role)),
		logger.String("actor_id", actorID),
	)
	return nil
}

// RequestRemoval removes an invited member at once; a joined member is only
// removed after ConfirmRemoval with the returned token.
func (s *MembershipService) RequestRemoval(ctx context.Context, hostID, actorID, userID string) (*domain.RemovalResult, error) {
	actor, target, link, err := s.pair(ctx, hostID, actorID, userID)
	if err != nil {
		return nil, err
	}

	removal, err := transition.MemberRemoval(hostID, userID, actor, target, link.Status)
	if err != nil {
		observe("member", "remove", err)
		return nil, err
	}

	if removal.NeedsConfirmation {
		token := uuid.New().String()
		pending := domain.PendingRemoval{
			Kind:    domain.RemovalMember,
			Scope:   hostID,
			Subject: userID,
			ActorID: actorID,
		}
		if err = s.confirmations.Save(ctx, token, pending, s.confirmTTL); err != nil {
			return nil, fmt.Errorf("save confirmation: %w", err)
		}
		metrics.Transitions.WithLabelValues("member", "remove", "pending_confirmation").Inc()
		return &domain.RemovalResult{Token: token}, nil
	}

	err = s.gate.do(func() error {
		return s.effects.apply(ctx, removal.Effects)
	}, "remove", hostID, userID)
	observe("member", "remove", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("member removed",
		logger.String("host_id", hostID),
		logger.String("user_id", userID),
		logger.String("actor_id", actorID),
	)
	return &domain.RemovalResult{Removed: true}, nil
}

// ConfirmRemoval performs a pending member removal. Privilege is checked again
// against the current roles.
func (s *MembershipService) ConfirmRemoval(ctx context.Context, hostID, actorID, token string) error {
	pending, err := claimConfirmation(ctx, s.confirmations, token, domain.RemovalMember, hostID, actorID)
	if err != nil {
		return err
	}

	err = s.gate.do(func() error {
		actor, target, link, err := s.pair(ctx, hostID, actorID, pending.Subject)
		if err != nil {
			return err
		}
		removal, err := transition.MemberRemoval(hostID, pending.Subject, actor, target, link.Status)
		if err != nil {
			return err
		}
		return s.effects.apply(ctx, removal.Effects)
	}, "remove", hostID, pending.Subject)
	observe("member", "confirm_remove", err)
	if err != nil {
		return err
	}

	s.logger.Info("member removal confirmed",
		logger.String("host_id", hostID),
		logger.String("user_id", pending.Subject),
		logger.String("actor_id", actorID),
	)
	return nil
}

// pair loads the actor's role, the target's role and the target's link.
// Invited targets hold no role yet.
func (s *MembershipService) pair(ctx context.Context, hostID, actorID, userID string) (domain.HostMemberType, domain.HostMemberType, *domain.HostUserLink, error) {
	actor, err := requireMember(ctx, s.users, hostID, actorID, domain.MemberTypeMember)
	if err != nil {
		return "", "", nil, err
	}

	link, err := s.members.GetLink(ctx, hostID, userID)
	if err != nil {
		return "", "", nil, fmt.Errorf("get member link: %w", err)
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", "", nil, fmt.Errorf("get member: %w", err)
	}

	return actor.MemberType(hostID), target.MemberType(hostID), link, nil
}
