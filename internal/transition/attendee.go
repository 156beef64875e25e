package transition

import (
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

// AttendeeAction is a user's own action on an event.
type AttendeeAction interface {
	attendeeAction()
	Name() string
}

// Join requests a spot. Profile is used to build the guest record on open events.
type Join struct {
	Profile *domain.User
}

// Cancel withdraws a pending request.
type Cancel struct{}

// Leave removes the user from the guestlist before check-in.
type Leave struct{}

func (Join) attendeeAction()   {}
func (Cancel) attendeeAction() {}
func (Leave) attendeeAction()  {}

func (Join) Name() string   { return "join" }
func (Cancel) Name() string { return "cancel" }
func (Leave) Name() string  { return "leave" }

type AttendeeResult struct {
	State   domain.AttendeeState
	Effects []Effect
}

// DidGuestlist reports the per-user event flag for the resulting state.
func (r AttendeeResult) DidGuestlist() bool {
	return r.State == domain.AttendeeOnGuestlist || r.State == domain.AttendeeCheckedIn
}

// DidRequest reports the per-user event flag for the resulting state.
func (r AttendeeResult) DidRequest() bool {
	return r.State == domain.AttendeeRequested
}

// Attendee computes the next state of userID on ev.
func Attendee(
	ev *domain.Event,
	userID string,
	state domain.AttendeeState,
	action AttendeeAction,
	now time.Time,
) (AttendeeResult, error) {
	switch a := action.(type) {
	case Join:
		return join(ev, userID, state, a, now)

	case Cancel:
		if state != domain.AttendeeRequested {
			return AttendeeResult{State: state}, fmt.Errorf("%w: cancel from %s", domain.ErrInvalidTransition, state)
		}
		return AttendeeResult{
			State:   domain.AttendeeNone,
			Effects: []Effect{DeleteRequest{EventID: ev.ID, UserID: userID}},
		}, nil

	case Leave:
		if state != domain.AttendeeOnGuestlist {
			return AttendeeResult{State: state}, fmt.Errorf("%w: leave from %s", domain.ErrInvalidTransition, state)
		}
		return AttendeeResult{
			State:   domain.AttendeeNone,
			Effects: []Effect{DeleteGuest{EventID: ev.ID, GuestID: userID}},
		}, nil

	default:
		return AttendeeResult{State: state}, fmt.Errorf("%w: unknown action %T", domain.ErrInvalidTransition, action)
	}
}

func join(ev *domain.Event, userID string, state domain.AttendeeState, a Join, now time.Time) (AttendeeResult, error) {
	switch state {
	case domain.AttendeeRequested:
		return AttendeeResult{State: state}, domain.ErrAlreadyRequested
	case domain.AttendeeOnGuestlist, domain.AttendeeCheckedIn:
		return AttendeeResult{State: state}, domain.ErrAlreadyOnGuestlist
	}

	if ev.State(now) == domain.EventPast {
		return AttendeeResult{State: state}, fmt.Errorf("%w: event has ended", domain.ErrInvalidTransition)
	}

	if ev.IsInviteOnly {
		return AttendeeResult{
			State:   domain.AttendeeRequested,
			Effects: []Effect{CreateRequest{EventID: ev.ID, UserID: userID}},
		}, nil
	}

	if a.Profile == nil || a.Profile.ID != userID {
		return AttendeeResult{State: state}, fmt.Errorf("%w: join requires the user's profile", domain.ErrValidation)
	}

	return AttendeeResult{
		State: domain.AttendeeOnGuestlist,
		Effects: []Effect{AddGuest{
			Guest: GuestFromUser(ev.ID, a.Profile, "", domain.GuestStatusInvited, now),
			Limit: ev.GuestLimit,
		}},
	}, nil
}

// GuestFromUser builds the guest record of an app user. The guest id is the
// user id so that a scanned user code matches the record.
func GuestFromUser(eventID string, u *domain.User, invitedBy string, status domain.GuestStatus, now time.Time) domain.EventGuest {
	userID := u.ID
	return domain.EventGuest{
		ID:         u.ID,
		EventID:    eventID,
		UserID:     &userID,
		Name:       u.DisplayName,
		University: u.University,
		Age:        u.Age,
		Gender:     u.Gender,
		Status:     status,
		InvitedBy:  invitedBy,
		Timestamp:  now.UTC(),
	}
}
