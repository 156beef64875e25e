package domain

import "time"

// EventState is the position of an event relative to the current time.
type EventState string

const (
	EventOngoing  EventState = "ongoing"
	EventUpcoming EventState = "upcoming"
	EventPast     EventState = "past"
)

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Event struct {
	ID           string    `json:"id"`
	HostID       string    `json:"host_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Address      string    `json:"address"`
	Location     *GeoPoint `json:"location,omitempty"`
	IsPrivate    bool      `json:"is_private"`
	IsInviteOnly bool      `json:"is_invite_only"`
	GuestLimit   *int      `json:"guest_limit,omitempty"`
	InviteLimit  *int      `json:"invite_limit,omitempty"`
	Amenities    []string  `json:"amenities"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// State classifies the event at now.
func (e *Event) State(now time.Time) EventState {
	return Classify(now, e.StartDate, e.EndDate)
}

// Classify maps (now, start, end) to exactly one EventState. Both bounds are
// inclusive for ongoing.
func Classify(now, start, end time.Time) EventState {
	switch {
	case end.Before(now):
		return EventPast
	case now.Before(start):
		return EventUpcoming
	default:
		return EventOngoing
	}
}

// EventView is an event as seen by one user. The per-user flags are never
// persisted on the event row.
type EventView struct {
	Event
	State        EventState           `json:"state"`
	DidGuestlist bool                 `json:"did_guestlist"`
	DidRequest   bool                 `json:"did_request"`
	IsFavorited  bool                 `json:"is_favorited"`
	ActionState  EventUserActionState `json:"action_state"`
}

type CreateEventInput struct {
	HostID       string    `validate:"required"`
	Title        string    `validate:"required,max=120"`
	Description  string    `validate:"max=2000"`
	StartDate    time.Time `validate:"required"`
	EndDate      time.Time `validate:"required,gtfield=StartDate"`
	Address      string
	Location     *GeoPoint
	IsPrivate    bool
	IsInviteOnly bool
	GuestLimit   *int `validate:"omitempty,gt=0"`
	InviteLimit  *int `validate:"omitempty,gt=0"`
	Amenities    []string
}

// UpdateEventInput carries field-level updates; nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string `validate:"omitempty,min=1,max=120"`
	Description *string `validate:"omitempty,max=2000"`
	Amenities   *[]string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (in UpdateEventInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Amenities == nil &&
		in.StartDate == nil && in.EndDate == nil
}
