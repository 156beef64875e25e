package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAttendeeState(t *testing.T) {
	invited := &EventGuest{Status: GuestStatusInvited}
	checked := &EventGuest{Status: GuestStatusCheckedIn}

	assert.Equal(t, AttendeeNone, DeriveAttendeeState(nil, false))
	assert.Equal(t, AttendeeRequested, DeriveAttendeeState(nil, true))
	assert.Equal(t, AttendeeOnGuestlist, DeriveAttendeeState(invited, false))
	assert.Equal(t, AttendeeOnGuestlist, DeriveAttendeeState(invited, true))
	assert.Equal(t, AttendeeCheckedIn, DeriveAttendeeState(checked, false))
}

func TestDeriveActionState(t *testing.T) {
	now := time.Now()
	open := &Event{StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)}
	inviteOnly := &Event{StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour), IsInviteOnly: true}
	past := &Event{StartDate: now.Add(-2 * time.Hour), EndDate: now.Add(-time.Hour)}

	assert.Equal(t, ActionStateJoin, DeriveActionState(open, AttendeeNone, now))
	assert.Equal(t, ActionStateRequestToJoin, DeriveActionState(inviteOnly, AttendeeNone, now))
	assert.Equal(t, ActionStateCancelRequest, DeriveActionState(inviteOnly, AttendeeRequested, now))
	assert.Equal(t, ActionStateLeave, DeriveActionState(open, AttendeeOnGuestlist, now))
	assert.Equal(t, ActionStateNone, DeriveActionState(open, AttendeeCheckedIn, now))
	assert.Equal(t, ActionStateNone, DeriveActionState(past, AttendeeNone, now))
}
