package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/handler/dto"
	"github.com/Peytose/mixer-app-sub003/internal/sections"
	"github.com/Peytose/mixer-app-sub003/internal/service"
	"github.com/Peytose/mixer-app-sub003/internal/transition"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, actorID string, input domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, eventID, viewerID string) (*domain.EventView, error)
	Update(ctx context.Context, eventID, actorID string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, eventID, actorID string) error
	ListForAttendees(ctx context.Context, hostID string) (sections.AttendeeEvents, error)
	ListForHost(ctx context.Context, hostID string) (sections.HostEvents, error)
	Favorite(ctx context.Context, userID, eventID string) error
	Unfavorite(ctx context.Context, userID, eventID string) error
	ListFavorites(ctx context.Context, userID string) (sections.AttendeeEvents, error)
}

type GuestlistSvc interface {
	Join(ctx context.Context, eventID, userID string) (domain.AttendeeState, error)
	CancelRequest(ctx context.Context, eventID, userID string) (domain.AttendeeState, error)
	Leave(ctx context.Context, eventID, userID string) (domain.AttendeeState, error)
	AddGuest(ctx context.Context, eventID, actorID string, in domain.AddGuestInput) (*domain.EventGuest, error)
	CheckIn(ctx context.Context, eventID, actorID, guestID string) (*domain.EventGuest, error)
	Scan(ctx context.Context, eventID, actorID, payload string) (*service.ScanResult, error)
	RequestRemoval(ctx context.Context, eventID, actorID, guestID string) (*domain.RemovalResult, error)
	ConfirmRemoval(ctx context.Context, eventID, actorID, token string) error
	ApproveRequest(ctx context.Context, eventID, actorID, userID string) (*domain.EventGuest, error)
	List(ctx context.Context, eventID, actorID string) (sections.Guestlist, error)
	ListRequests(ctx context.Context, eventID, actorID string) ([]domain.JoinRequest, error)
}

type MembershipSvc interface {
	Invite(ctx context.Context, hostID, actorID, userID string) (*domain.HostUserLink, error)
	Accept(ctx context.Context, hostID, userID string) error
	Decline(ctx context.Context, hostID, userID string) error
	ListMembers(ctx context.Context, hostID string) (sections.MemberBuckets, error)
	Actions(ctx context.Context, hostID, actorID, userID string) (transition.MemberActions, error)
	AssignRole(ctx context.Context, hostID, actorID, userID string, role domain.HostMemberType) error
	RequestRemoval(ctx context.Context, hostID, actorID, userID string) (*domain.RemovalResult, error)
	ConfirmRemoval(ctx context.Context, hostID, actorID, token string) error
}

type HostSvc interface {
	Create(ctx context.Context, creatorID string, input domain.CreateHostInput) (*domain.Host, error)
	GetByID(ctx context.Context, id string) (*domain.Host, error)
	Update(ctx context.Context, hostID, actorID string, input domain.UpdateHostInput) (*domain.Host, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Relationship(ctx context.Context, userID, otherID string) (domain.RelationshipState, error)
}

type SearchSvc interface {
	Search(ctx context.Context, query string, category domain.SearchCategory) ([]domain.SearchResult, error)
}

type Handler struct {
	eventService      EventSvc
	guestlistService  GuestlistSvc
	membershipService MembershipSvc
	hostService       HostSvc
	userService       UserSvc
	searchService     SearchSvc
}

func NewHandler(
	eventService EventSvc,
	guestlistService GuestlistSvc,
	membershipService MembershipSvc,
	hostService HostSvc,
	userService UserSvc,
	searchService SearchSvc,
) *Handler {
	return &Handler{
		eventService:      eventService,
		guestlistService:  guestlistService,
		membershipService: membershipService,
		hostService:       hostService,
		userService:       userService,
		searchService:     searchService,
	}
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

// removal answers 200 when the removal happened and 202 with a token when it
// waits for confirmation.
func removal(c *ginext.Context, res *domain.RemovalResult) {
	if res.Removed {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(http.StatusAccepted, res)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrHostNotFound),
		errors.Is(err, domain.ErrGuestNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrConfirmationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrAlreadyOnGuestlist),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrGuestlistFull),
		errors.Is(err, domain.ErrNotOnGuestlist),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrActionInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidScanPayload):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
