package domain

import "time"

type GuestStatus string

const (
	GuestStatusInvited   GuestStatus = "invited"
	GuestStatusCheckedIn GuestStatus = "checkedIn"
)

func (s GuestStatus) Valid() bool {
	return s == GuestStatusInvited || s == GuestStatusCheckedIn
}

type Gender string

const (
	GenderWoman          Gender = "woman"
	GenderMan            Gender = "man"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "preferNotToSay"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderWoman, GenderMan, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// EventGuest is an attendance record for one event. Guests added by the app
// for a signed-in user carry the user's id as both ID and UserID; manually
// added guests may have no account.
type EventGuest struct {
	ID         string      `json:"id"`
	EventID    string      `json:"event_id"`
	UserID     *string     `json:"user_id,omitempty"`
	Name       string      `json:"name"`
	University string      `json:"university"`
	Age        *int        `json:"age,omitempty"`
	Gender     Gender      `json:"gender"`
	Status     GuestStatus `json:"status"`
	InvitedBy  string      `json:"invited_by"`
	Timestamp  time.Time   `json:"timestamp"`
}

type AddGuestInput struct {
	Name       string  `validate:"required,max=100"`
	University string  `validate:"max=100"`
	Age        *int    `validate:"omitempty,gte=0,lte=130"`
	Gender     Gender  `validate:"omitempty,oneof=woman man other preferNotToSay"`
	InvitedBy  string  `validate:"max=100"`
	UserID     *string `validate:"omitempty,max=128"`
}

// JoinRequest is a pending request to join an invite-only event.
type JoinRequest struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type Favorite struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}
