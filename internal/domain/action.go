package domain

import "time"

// AttendeeState is one user's relationship to one event.
type AttendeeState string

const (
	AttendeeNone        AttendeeState = "none"
	AttendeeRequested   AttendeeState = "requested"
	AttendeeOnGuestlist AttendeeState = "onGuestlist"
	AttendeeCheckedIn   AttendeeState = "checkedIn"
)

// DeriveAttendeeState combines the user's guest record (nil when absent) and
// request flag into a single state. A guest record wins over a stale request.
func DeriveAttendeeState(guest *EventGuest, didRequest bool) AttendeeState {
	switch {
	case guest != nil && guest.Status == GuestStatusCheckedIn:
		return AttendeeCheckedIn
	case guest != nil:
		return AttendeeOnGuestlist
	case didRequest:
		return AttendeeRequested
	default:
		return AttendeeNone
	}
}

// EventUserActionState is the action a user is offered on an event screen.
type EventUserActionState string

const (
	ActionStateJoin          EventUserActionState = "join"
	ActionStateRequestToJoin EventUserActionState = "requestToJoin"
	ActionStateCancelRequest EventUserActionState = "cancelRequest"
	ActionStateLeave         EventUserActionState = "leave"
	ActionStateNone          EventUserActionState = "none"
)

func DeriveActionState(e *Event, st AttendeeState, now time.Time) EventUserActionState {
	if e.State(now) == EventPast {
		return ActionStateNone
	}

	switch st {
	case AttendeeRequested:
		return ActionStateCancelRequest
	case AttendeeOnGuestlist:
		return ActionStateLeave
	case AttendeeCheckedIn:
		return ActionStateNone
	}

	if e.IsInviteOnly {
		return ActionStateRequestToJoin
	}
	return ActionStateJoin
}
