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

type ScanResult struct {
	Outcome transition.ScanOutcome `json:"outcome"`
	Guest   *domain.EventGuest     `json:"guest"`
}

type GuestlistService struct {
	events        ports.EventRepo
	guests        ports.GuestRepo
	requests      ports.RequestRepo
	users         ports.UserRepo
	confirmations ports.ConfirmationStore
	notifier      ports.Notifier
	effects       *effectRunner
	gate          gate
	confirmTTL    time.Duration
	logger        logger.Logger
}

func NewGuestlistService(
	events ports.EventRepo,
	guests ports.GuestRepo,
	requests ports.RequestRepo,
	users ports.UserRepo,
	confirmations ports.ConfirmationStore,
	notifier ports.Notifier,
	confirmTTL time.Duration,
	logger logger.Logger,
) *GuestlistService {
	return &GuestlistService{
		events:        events,
		guests:        guests,
		requests:      requests,
		users:         users,
		confirmations: confirmations,
		notifier:      notifier,
		effects: &effectRunner{
			guests:   guests,
			requests: requests,
			users:    users,
			logger:   logger,
		},
		confirmTTL: confirmTTL,
		logger:     logger,
	}
}

// Join puts the user on the guestlist of an open event or files a request on
// an invite-only one. It returns the user's new state.
func (s *GuestlistService) Join(ctx context.Context, eventID, userID string) (domain.AttendeeState, error) {
	return s.attend(ctx, eventID, userID, transition.Join{})
}

func (s *GuestlistService) CancelRequest(ctx context.Context, eventID, userID string) (domain.AttendeeState, error) {
	return s.attend(ctx, eventID, userID, transition.Cancel{})
}

func (s *GuestlistService) Leave(ctx context.Context, eventID, userID string) (domain.AttendeeState, error) {
	return s.attend(ctx, eventID, userID, transition.Leave{})
}

func (s *GuestlistService) attend(ctx context.Context, eventID, userID string, action transition.AttendeeAction) (domain.AttendeeState, error) {
	var state domain.AttendeeState

	err := s.gate.do(func() error {
		event, err := s.events.GetByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		_, current, err := attendeeState(ctx, s.guests, s.requests, eventID, userID)
		if err != nil {
			return err
		}
		state = current

		if j, ok := action.(transition.Join); ok {
			j.Profile = user
			action = j
		}

		res, err := transition.Attendee(event, userID, current, action, time.Now())
		if err != nil {
			return err
		}
		if err = s.effects.apply(ctx, res.Effects); err != nil {
			return err
		}
		state = res.State

		s.logger.Info("attendee transition applied",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
			logger.String("action", action.Name()),
			logger.String("from", string(current)),
			logger.String("to", string(res.State)),
		)

		if res.State == domain.AttendeeOnGuestlist && current == domain.AttendeeNone {
			go s.notifier.NotifyAddedToGuestlist(context.WithoutCancel(ctx), user, event)
		}
		return nil
	}, action.Name(), eventID, userID)

	observe("attendee", action.Name(), err)
	return state, err
}

// AddGuest is a host adding a guest by hand, with or without an app account.
func (s *GuestlistService) AddGuest(ctx context.Context, eventID, actorID string, in domain.AddGuestInput) (*domain.EventGuest, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	actor, err := requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember)
	if err != nil {
		return nil, err
	}

	if event.State(time.Now()) == domain.EventPast {
		return nil, fmt.Errorf("%w: event has ended", domain.ErrInvalidTransition)
	}

	guest := domain.EventGuest{
		ID:         uuid.New().String(),
		EventID:    eventID,
		UserID:     in.UserID,
		Name:       in.Name,
		University: in.University,
		Age:        in.Age,
		Gender:     in.Gender,
		Status:     domain.GuestStatusInvited,
		InvitedBy:  in.InvitedBy,
		Timestamp:  time.Now().UTC(),
	}
	if in.UserID != nil {
		guest.ID = *in.UserID
	}
	if guest.Gender == "" {
		guest.Gender = domain.GenderPreferNotToSay
	}
	if guest.InvitedBy == "" {
		guest.InvitedBy = actor.DisplayName
	}

	err = s.gate.do(func() error {
		return s.effects.apply(ctx, []transition.Effect{
			transition.AddGuest{Guest: guest, Limit: event.GuestLimit},
		})
	}, "add", eventID, guest.ID)
	observe("guest", "add", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("guest added",
		logger.String("event_id", eventID),
		logger.String("guest_id", guest.ID),
		logger.String("actor_id", actorID),
	)

	return &guest, nil
}

func (s *GuestlistService) CheckIn(ctx context.Context, eventID, actorID, guestID string) (*domain.EventGuest, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err = requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember); err != nil {
		return nil, err
	}

	var guest *domain.EventGuest
	err = s.gate.do(func() error {
		guest, err = s.guests.Get(ctx, eventID, guestID)
		if err != nil {
			return fmt.Errorf("get guest: %w", err)
		}
		return s.checkIn(ctx, event, guest)
	}, "checkin", eventID, guestID)
	observe("guest", "checkin", err)
	if err != nil {
		return nil, err
	}

	return guest, nil
}

func (s *GuestlistService) checkIn(ctx context.Context, event *domain.Event, guest *domain.EventGuest) error {
	effects, err := transition.CheckIn(guest)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedRecord) {
			s.logger.Error("guest record cannot be checked in",
				logger.String("event_id", event.ID),
				logger.String("guest_id", guest.ID),
				logger.String("error", err.Error()),
			)
		}
		return err
	}
	if err = s.effects.apply(ctx, effects); err != nil {
		return err
	}
	guest.Status = domain.GuestStatusCheckedIn

	s.logger.Info("guest checked in",
		logger.String("event_id", event.ID),
		logger.String("guest_id", guest.ID),
	)

	if guest.UserID != nil {
		go s.notifyCheckedIn(context.WithoutCancel(ctx), *guest.UserID, event)
	}
	return nil
}

func (s *GuestlistService) notifyCheckedIn(ctx context.Context, userID string, event *domain.Event) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for check-in notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyCheckedIn(ctx, user, event)
}

// Scan handles a scanned check-in code. A code matching a guest always checks
// that guest in; an unknown code adds the user on open events only.
func (s *GuestlistService) Scan(ctx context.Context, eventID, actorID, payload string) (*ScanResult, error) {
	guestID, err := domain.ParseScanPayload(payload)
	if err != nil {
		observe("guest", "scan", err)
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	actor, err := requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember)
	if err != nil {
		return nil, err
	}

	var res ScanResult
	err = s.gate.do(func() error {
		existing, err := s.guests.Get(ctx, eventID, guestID)
		if err != nil && !errors.Is(err, domain.ErrGuestNotFound) {
			return fmt.Errorf("get guest: %w", err)
		}

		outcome, _, err := transition.ResolveScan(event, existing)
		if err != nil {
			return err
		}
		res.Outcome = outcome

		if outcome == transition.ScanCheckIn {
			res.Guest = existing
			return s.checkIn(ctx, event, existing)
		}

		now := time.Now()
		if event.State(now) == domain.EventPast {
			return fmt.Errorf("%w: event has ended", domain.ErrInvalidTransition)
		}
		user, err := s.users.GetByID(ctx, guestID)
		if err != nil {
			return fmt.Errorf("get scanned user: %w", err)
		}
		effects := transition.AddScanned(event, user, actor.DisplayName, now)
		if err = s.effects.apply(ctx, effects); err != nil {
			return err
		}
		added := effects[0].(transition.AddGuest).Guest
		res.Guest = &added

		go s.notifier.NotifyAddedToGuestlist(context.WithoutCancel(ctx), user, event)
		return nil
	}, "scan", eventID, guestID)
	observe("guest", "scan", err)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// RequestRemoval removes an invited guest at once. A checked-in guest is only
// removed after ConfirmRemoval with the returned token.
func (s *GuestlistService) RequestRemoval(ctx context.Context, eventID, actorID, guestID string) (*domain.RemovalResult, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err = requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember); err != nil {
		return nil, err
	}

	guest, err := s.guests.Get(ctx, eventID, guestID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}

	removal := transition.GuestRemoval(guest)
	if removal.NeedsConfirmation {
		token := uuid.New().String()
		pending := domain.PendingRemoval{
			Kind:    domain.RemovalGuest,
			Scope:   eventID,
			Subject: guestID,
			ActorID: actorID,
		}
		if err = s.confirmations.Save(ctx, token, pending, s.confirmTTL); err != nil {
			return nil, fmt.Errorf("save confirmation: %w", err)
		}
		metrics.Transitions.WithLabelValues("guest", "remove", "pending_confirmation").Inc()
		return &domain.RemovalResult{Token: token}, nil
	}

	err = s.gate.do(func() error {
		return s.effects.apply(ctx, removal.Effects)
	}, "remove", eventID, guestID)
	observe("guest", "remove", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("guest removed",
		logger.String("event_id", eventID),
		logger.String("guest_id", guestID),
		logger.String("actor_id", actorID),
	)

	return &domain.RemovalResult{Removed: true}, nil
}

// ConfirmRemoval performs a pending removal. A token works once.
func (s *GuestlistService) ConfirmRemoval(ctx context.Context, eventID, actorID, token string) error {
	pending, err := claimConfirmation(ctx, s.confirmations, token, domain.RemovalGuest, eventID, actorID)
	if err != nil {
		return err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if _, err = requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember); err != nil {
		return err
	}

	err = s.gate.do(func() error {
		guest, err := s.guests.Get(ctx, eventID, pending.Subject)
		if err != nil {
			return fmt.Errorf("get guest: %w", err)
		}
		return s.effects.apply(ctx, transition.GuestRemoval(guest).Effects)
	}, "remove", eventID, pending.Subject)
	observe("guest", "confirm_remove", err)
	if err != nil {
		return err
	}

	s.logger.Info("guest removal confirmed",
		logger.String("event_id", eventID),
		logger.String("guest_id", pending.Subject),
		logger.String("actor_id", actorID),
	)
	return nil
}

// ApproveRequest moves a requesting user onto the guestlist.
func (s *GuestlistService) ApproveRequest(ctx context.Context, eventID, actorID, userID string) (*domain.EventGuest, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	actor, err := requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember)
	if err != nil {
		return nil, err
	}

	var guest domain.EventGuest
	err = s.gate.do(func() error {
		requested, err := s.requests.Exists(ctx, eventID, userID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if !requested {
			return domain.ErrRequestNotFound
		}

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		effects := transition.ApproveRequest(event, user, actor.DisplayName, time.Now())
		if err = s.effects.apply(ctx, effects); err != nil {
			return err
		}
		guest = effects[0].(transition.AddGuest).Guest

		go s.notifier.NotifyAddedToGuestlist(context.WithoutCancel(ctx), user, event)
		return nil
	}, "approve", eventID, userID)
	observe("attendee", "approve", err)
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

// List returns the guestlist grouped into alphabetical sections.
func (s *GuestlistService) List(ctx context.Context, eventID, actorID string) (sections.Guestlist, error) {
	if err := s.Authorize(ctx, eventID, actorID); err != nil {
		return sections.Guestlist{}, err
	}

	guests, err := s.guests.List(ctx, eventID)
	if err != nil {
		return sections.Guestlist{}, fmt.Errorf("list guests: %w", err)
	}
	return sections.BuildGuestlist(guests), nil
}

func (s *GuestlistService) ListRequests(ctx context.Context, eventID, actorID string) ([]domain.JoinRequest, error) {
	if err := s.Authorize(ctx, eventID, actorID); err != nil {
		return nil, err
	}
	return s.requests.List(ctx, eventID)
}

// Authorize checks that actorID may see and manage the guestlist of eventID.
func (s *GuestlistService) Authorize(ctx context.Context, eventID, actorID string) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	_, err = requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeMember)
	return err
}

// Guests and Requests load full snapshots for synchronization adapters.
func (s *GuestlistService) Guests(ctx context.Context, eventID string) ([]domain.EventGuest, error) {
	return s.guests.List(ctx, eventID)
}

func (s *GuestlistService) Requests(ctx context.Context, eventID string) ([]domain.JoinRequest, error) {
	return s.requests.List(ctx, eventID)
}
