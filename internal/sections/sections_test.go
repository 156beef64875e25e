package sections

import (
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestSections_Alphabetical(t *testing.T) {
	guests := []domain.EventGuest{
		{ID: "1", Name: "bob"},
		{ID: "2", Name: "Alice"},
		{ID: "3", Name: "42 Club"},
		{ID: "4", Name: "Aaron"},
		{ID: "5", Name: "émile"},
		{ID: "6", Name: ""},
	}

	got := GuestSections(guests)

	require.Len(t, got, 4)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, []string{"Aaron", "Alice"}, names(got[0].Guests))
	assert.Equal(t, "B", got[1].Title)
	assert.Equal(t, "É", got[2].Title)
	assert.Equal(t, "#", got[3].Title)
	assert.Len(t, got[3].Guests, 2)
}

func TestGuestSections_Empty(t *testing.T) {
	assert.Empty(t, GuestSections(nil))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]domain.EventGuest{
		{Status: domain.GuestStatusInvited},
		{Status: domain.GuestStatusCheckedIn},
		{Status: domain.GuestStatusCheckedIn},
	})

	assert.Equal(t, GuestSummary{Total: 3, Invited: 1, CheckedIn: 2}, s)
}

func TestBuildMembers(t *testing.T) {
	now := time.Now()
	members := []domain.HostMember{
		{HostUserLink: domain.HostUserLink{UserID: "u1", Status: domain.MemberJoined}, DisplayName: "Zed", MemberType: domain.MemberTypeMember},
		{HostUserLink: domain.HostUserLink{UserID: "u2", Status: domain.MemberInvited, Timestamp: now}},
		{HostUserLink: domain.HostUserLink{UserID: "u3", Status: domain.MemberJoined}, DisplayName: "Amy", MemberType: domain.MemberTypeAdmin},
		{HostUserLink: domain.HostUserLink{UserID: "u4", Status: domain.MemberInvited, Timestamp: now.Add(-time.Hour)}},
		{HostUserLink: domain.HostUserLink{UserID: "u5", Status: domain.MemberJoined}, DisplayName: "Ben", MemberType: domain.MemberTypeMember},
	}

	got := BuildMembers(members)

	assert.Equal(t, []string{"u4", "u2"}, userIDs(got.Invited))
	assert.Equal(t, []string{"u3", "u5", "u1"}, userIDs(got.Joined))
}

func TestBuildAttendeeEvents(t *testing.T) {
	now := time.Now()
	events := []domain.Event{
		{ID: "later", StartDate: now.Add(5 * time.Hour), EndDate: now.Add(6 * time.Hour)},
		{ID: "past", StartDate: now.Add(-5 * time.Hour), EndDate: now.Add(-4 * time.Hour)},
		{ID: "now", StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
		{ID: "soon", StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)},
	}

	got := BuildAttendeeEvents(events, now)

	assert.Equal(t, []string{"now"}, eventIDs(got.Current))
	assert.Equal(t, []string{"soon", "later"}, eventIDs(got.Upcoming))
}

func TestBuildHostEvents(t *testing.T) {
	now := time.Now()
	events := []domain.Event{
		{ID: "old", StartDate: now.Add(-50 * time.Hour), EndDate: now.Add(-48 * time.Hour)},
		{ID: "soon", StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)},
		{ID: "recent", StartDate: now.Add(-5 * time.Hour), EndDate: now.Add(-4 * time.Hour)},
		{ID: "now", StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
	}

	got := BuildHostEvents(events, now)

	assert.Equal(t, []string{"now", "soon"}, eventIDs(got.Active))
	assert.Equal(t, []string{"recent", "old"}, eventIDs(got.Past))
}

func names(gs []domain.EventGuest) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Name
	}
	return out
}

func userIDs(ms []domain.HostMember) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.UserID
	}
	return out
}

func eventIDs(es []domain.Event) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}
