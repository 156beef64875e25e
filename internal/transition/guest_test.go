package transition

import (
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn_Invited(t *testing.T) {
	g := &domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusInvited}

	effects, err := CheckIn(g)

	require.NoError(t, err)
	assert.Equal(t, []Effect{SetGuestStatus{EventID: "e1", GuestID: "g1", Status: domain.GuestStatusCheckedIn}}, effects)
}

func TestCheckIn_IsOneWay(t *testing.T) {
	g := &domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusCheckedIn}

	effects, err := CheckIn(g)

	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	assert.Empty(t, effects)
}

func TestCheckIn_UnknownStatus(t *testing.T) {
	_, err := CheckIn(&domain.EventGuest{ID: "g1", Status: "vip"})

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

// No exposed operation produces an effect that writes invited onto a checked-in guest.
func TestGuestOperations_NeverRevertCheckIn(t *testing.T) {
	g := &domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusCheckedIn}
	ev := upcomingEvent(false)

	var all []Effect
	if e, err := CheckIn(g); err == nil {
		all = append(all, e...)
	}
	if _, e, err := ResolveScan(ev, g); err == nil {
		all = append(all, e...)
	}
	all = append(all, GuestRemoval(g).Effects...)

	for _, e := range all {
		if s, ok := e.(SetGuestStatus); ok {
			assert.NotEqual(t, domain.GuestStatusInvited, s.Status)
		}
		if a, ok := e.(AddGuest); ok {
			assert.NotEqual(t, g.ID, a.Guest.ID)
		}
	}
}

func TestResolveScan_MatchChecksIn(t *testing.T) {
	g := &domain.EventGuest{ID: "u1", EventID: "e1", Status: domain.GuestStatusInvited}

	outcome, effects, err := ResolveScan(upcomingEvent(true), g)

	require.NoError(t, err)
	assert.Equal(t, ScanCheckIn, outcome)
	assert.Equal(t, []Effect{SetGuestStatus{EventID: "e1", GuestID: "u1", Status: domain.GuestStatusCheckedIn}}, effects)
}

func TestResolveScan_MatchAlreadyCheckedIn(t *testing.T) {
	g := &domain.EventGuest{ID: "u1", EventID: "e1", Status: domain.GuestStatusCheckedIn}

	outcome, _, err := ResolveScan(upcomingEvent(false), g)

	assert.Equal(t, ScanCheckIn, outcome)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestResolveScan_NoMatch(t *testing.T) {
	outcome, effects, err := ResolveScan(upcomingEvent(false), nil)
	require.NoError(t, err)
	assert.Equal(t, ScanAddToGuestlist, outcome)
	assert.Empty(t, effects)

	_, _, err = ResolveScan(upcomingEvent(true), nil)
	assert.ErrorIs(t, err, domain.ErrNotOnGuestlist)
}

func TestAddScanned(t *testing.T) {
	ev := upcomingEvent(false)
	u := &domain.User{ID: "u9", DisplayName: "Bob"}

	effects := AddScanned(ev, u, "Door", time.Now())

	require.Len(t, effects, 1)
	add := effects[0].(AddGuest)
	assert.Equal(t, "u9", add.Guest.ID)
	assert.Equal(t, "Door", add.Guest.InvitedBy)
	assert.Equal(t, domain.GuestStatusInvited, add.Guest.Status)
}

func TestApproveRequest(t *testing.T) {
	ev := upcomingEvent(true)
	u := &domain.User{ID: "u2", DisplayName: "Carol"}

	effects := ApproveRequest(ev, u, "Host", time.Now())

	require.Len(t, effects, 1)
	add, ok := effects[0].(AddGuest)
	require.True(t, ok)
	assert.Equal(t, "u2", add.Guest.ID)
	assert.Equal(t, domain.GuestStatusInvited, add.Guest.Status)
}

func TestGuestRemoval_Confirmations(t *testing.T) {
	invited := &domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusInvited}
	checked := &domain.EventGuest{ID: "g2", EventID: "e1", Status: domain.GuestStatusCheckedIn}

	r := GuestRemoval(invited)
	assert.False(t, r.NeedsConfirmation)
	assert.Equal(t, []Effect{DeleteGuest{EventID: "e1", GuestID: "g1"}}, r.Effects)

	r = GuestRemoval(checked)
	assert.True(t, r.NeedsConfirmation)
	assert.Equal(t, []Effect{DeleteGuest{EventID: "e1", GuestID: "g2"}}, r.Effects)
}
