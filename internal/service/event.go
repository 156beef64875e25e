package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/sections"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo      ports.EventRepo
	guests    ports.GuestRepo
	requests  ports.RequestRepo
	favorites ports.FavoriteRepo
	users     ports.UserRepo
	logger    logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	guests ports.GuestRepo,
	requests ports.RequestRepo,
	favorites ports.FavoriteRepo,
	users ports.UserRepo,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:      repo,
		guests:    guests,
		requests:  requests,
		favorites: favorites,
		users:     users,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, actorID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := requireMember(ctx, s.users, input.HostID, actorID, domain.MemberTypeModerator); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.New().String(),
		HostID:       input.HostID,
		Title:        input.Title,
		Description:  input.Description,
		StartDate:    input.StartDate.UTC(),
		EndDate:      input.EndDate.UTC(),
		Address:      input.Address,
		Location:     input.Location,
		IsPrivate:    input.IsPrivate,
		IsInviteOnly: input.IsInviteOnly,
		GuestLimit:   input.GuestLimit,
		InviteLimit:  input.InviteLimit,
		Amenities:    input.Amenities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if event.Amenities == nil {
		event.Amenities = []string{}
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("host_id", event.HostID),
	)

	return event, nil
}

// Get returns the event as seen by viewerID. The per-user flags stay false
// for anonymous viewers.
func (s *EventService) Get(ctx context.Context, eventID, viewerID string) (*domain.EventView, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	view := &domain.EventView{Event: *event, State: event.State(now)}

	state := domain.AttendeeNone
	if viewerID != "" {
		if _, state, err = attendeeState(ctx, s.guests, s.requests, eventID, viewerID); err != nil {
			return nil, err
		}
		if view.IsFavorited, err = s.favorites.Exists(ctx, viewerID, eventID); err != nil {
			return nil, fmt.Errorf("get favorite: %w", err)
		}
	}

	view.DidGuestlist = state == domain.AttendeeOnGuestlist || state == domain.AttendeeCheckedIn
	view.DidRequest = state == domain.AttendeeRequested
	view.ActionState = domain.DeriveActionState(event, state, now)

	return view, nil
}

func (s *EventService) Update(ctx context.Context, eventID, actorID string, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if _, err = requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeModerator); err != nil {
		return nil, err
	}

	start, end := event.StartDate, event.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
	}

	updated, err := s.repo.Update(ctx, eventID, input)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, eventID, actorID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if _, err = requireMember(ctx, s.users, event.HostID, actorID, domain.MemberTypeAdmin); err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", eventID),
		logger.String("actor_id", actorID),
	)
	return nil
}

// ListForAttendees buckets the host's events into current and upcoming.
func (s *EventService) ListForAttendees(ctx context.Context, hostID string) (sections.AttendeeEvents, error) {
	events, err := s.repo.ListByHost(ctx, hostID)
	if err != nil {
		return sections.AttendeeEvents{}, fmt.Errorf("list events: %w", err)
	}
	return sections.BuildAttendeeEvents(events, time.Now()), nil
}

// ListForHost buckets the host's events into active and past.
func (s *EventService) ListForHost(ctx context.Context, hostID string) (sections.HostEvents, error) {
	events, err := s.repo.ListByHost(ctx, hostID)
	if err != nil {
		return sections.HostEvents{}, fmt.Errorf("list events: %w", err)
	}
	return sections.BuildHostEvents(events, time.Now()), nil
}

func (s *EventService) Favorite(ctx context.Context, userID, eventID string) error {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return err
	}
	f := &domain.Favorite{UserID: userID, EventID: eventID, Timestamp: time.Now().UTC()}
	if err := s.favorites.Add(ctx, f); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (s *EventService) Unfavorite(ctx context.Context, userID, eventID string) error {
	if err := s.favorites.Remove(ctx, userID, eventID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the user's favorited events grouped by time.
func (s *EventService) ListFavorites(ctx context.Context, userID string) (sections.AttendeeEvents, error) {
	events, err := s.FavoriteEvents(ctx, userID)
	if err != nil {
		return sections.AttendeeEvents{}, err
	}
	return sections.BuildAttendeeEvents(events, time.Now()), nil
}

// FavoriteEvents loads the user's favorited events; it doubles as the
// snapshot loader of the favorites collection.
func (s *EventService) FavoriteEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	ids, err := s.favorites.ListEventIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Event{}, nil
	}

	events, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list favorite events: %w", err)
	}
	return events, nil
}
