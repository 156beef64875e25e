package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports/mocks"
	"github.com/Peytose/mixer-app-sub003/internal/transition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type guestlistMocks struct {
	events        *mocks.MockEventRepo
	guests        *mocks.MockGuestRepo
	requests      *mocks.MockRequestRepo
	users         *mocks.MockUserRepo
	confirmations *mocks.MockConfirmationStore
	notifier      *mocks.MockNotifier
}

func newGuestlistService(t *testing.T) (*GuestlistService, guestlistMocks) {
	m := guestlistMocks{
		events:        mocks.NewMockEventRepo(t),
		guests:        mocks.NewMockGuestRepo(t),
		requests:      mocks.NewMockRequestRepo(t),
		users:         mocks.NewMockUserRepo(t),
		confirmations: mocks.NewMockConfirmationStore(t),
		notifier:      mocks.NewMockNotifier(t),
	}
	svc := NewGuestlistService(m.events, m.guests, m.requests, m.users, m.confirmations, m.notifier, 5*time.Minute, newTestLogger(t))
	return svc, m
}

func TestGuestlistService_Join_OpenEvent(t *testing.T) {
	svc, m := newGuestlistService(t)
	event := testEvent(false)
	limit := 100
	event.GuestLimit = &limit
	user := testUser("u1", nil)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(nil, domain.ErrGuestNotFound)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(false, nil)
	m.guests.EXPECT().Add(mock.Anything, mock.MatchedBy(func(g *domain.EventGuest) bool {
		return g.ID == "u1" && g.EventID == "e1" && g.Status == domain.GuestStatusInvited &&
			g.UserID != nil && *g.UserID == "u1" && g.Name == user.DisplayName
	}), &limit).Return(nil)
	m.notifier.EXPECT().NotifyAddedToGuestlist(mock.Anything, user, event).Return()

	state, err := svc.Join(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendeeOnGuestlist, state)

	time.Sleep(50 * time.Millisecond)
}

func TestGuestlistService_Join_InviteOnlyCreatesRequest(t *testing.T) {
	svc, m := newGuestlistService(t)
	event := testEvent(true)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(nil, domain.ErrGuestNotFound)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(false, nil)
	m.requests.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.JoinRequest) bool {
		return r.EventID == "e1" && r.UserID == "u1"
	})).Return(nil)

	state, err := svc.Join(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendeeRequested, state)
}

func TestGuestlistService_Join_AlreadyOnGuestlist(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(&domain.EventGuest{ID: "u1", Status: domain.GuestStatusInvited}, nil)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(false, nil)

	state, err := svc.Join(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyOnGuestlist)
	assert.Equal(t, domain.AttendeeOnGuestlist, state)
}

func TestGuestlistService_Join_FailedWriteLeavesState(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(nil, domain.ErrGuestNotFound)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(false, nil)
	m.guests.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrGuestlistFull).Once()

	state, err := svc.Join(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGuestlistFull)
	assert.Equal(t, domain.AttendeeNone, state)
}

func TestGuestlistService_CancelRequest(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(true), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(nil, domain.ErrGuestNotFound)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(true, nil)
	m.requests.EXPECT().Delete(mock.Anything, "e1", "u1").Return(nil)

	state, err := svc.CancelRequest(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendeeNone, state)
}

func TestGuestlistService_Leave_AfterCheckInRejected(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(testUser("u1", nil), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(&domain.EventGuest{ID: "u1", Status: domain.GuestStatusCheckedIn}, nil)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(false, nil)

	state, err := svc.Leave(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.AttendeeCheckedIn, state)
}

func TestGuestlistService_AddGuest_RequiresHostMember(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "stranger").Return(testUser("stranger", nil), nil)

	_, err := svc.AddGuest(context.Background(), "e1", "stranger", domain.AddGuestInput{Name: "Sam"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGuestlistService_AddGuest_Manual(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Add(mock.Anything, mock.MatchedBy(func(g *domain.EventGuest) bool {
		return g.Name == "Sam" && g.UserID == nil && g.ID != "" && g.InvitedBy == "User host"
	}), (*int)(nil)).Return(nil)

	guest, err := svc.AddGuest(context.Background(), "e1", "host", domain.AddGuestInput{Name: "Sam"})

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusInvited, guest.Status)
	assert.Equal(t, domain.GenderPreferNotToSay, guest.Gender)
}

func TestGuestlistService_AddGuest_Validation(t *testing.T) {
	svc, _ := newGuestlistService(t)

	_, err := svc.AddGuest(context.Background(), "e1", "host", domain.AddGuestInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestlistService_CheckIn_Twice(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "g1").Return(&domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusCheckedIn}, nil)

	_, err := svc.CheckIn(context.Background(), "e1", "host", "g1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestGuestlistService_Scan_MatchChecksIn(t *testing.T) {
	svc, m := newGuestlistService(t)
	event := testEvent(false)
	uid := "u1"
	guest := &domain.EventGuest{ID: "u1", EventID: "e1", UserID: &uid, Status: domain.GuestStatusInvited}
	user := testUser("u1", nil)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u1").Return(guest, nil)
	m.guests.EXPECT().SetStatus(mock.Anything, "e1", "u1", domain.GuestStatusCheckedIn).Return(nil).Once()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyCheckedIn(mock.Anything, user, event).Return()

	res, err := svc.Scan(context.Background(), "e1", "host", "u1")

	require.NoError(t, err)
	assert.Equal(t, transition.ScanCheckIn, res.Outcome)
	assert.Equal(t, domain.GuestStatusCheckedIn, res.Guest.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestGuestlistService_Scan_InvalidPayloadTouchesNothing(t *testing.T) {
	svc, _ := newGuestlistService(t)

	_, err := svc.Scan(context.Background(), "e1", "host", "u1; DROP TABLE")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidScanPayload)
}

func TestGuestlistService_Scan_InviteOnlyNoMatch(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(true), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u9").Return(nil, domain.ErrGuestNotFound)

	_, err := svc.Scan(context.Background(), "e1", "host", "u9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOnGuestlist)
}

func TestGuestlistService_Scan_EndedEventNoMatchRejected(t *testing.T) {
	svc, m := newGuestlistService(t)
	event := testEvent(false)
	event.StartDate = time.Now().Add(-5 * time.Hour)
	event.EndDate = time.Now().Add(-time.Hour)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u9").Return(nil, domain.ErrGuestNotFound)

	_, err := svc.Scan(context.Background(), "e1", "host", "u9")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	m.guests.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestGuestlistService_Scan_OpenNoMatchAdds(t *testing.T) {
	svc, m := newGuestlistService(t)
	event := testEvent(false)
	user := testUser("u9", nil)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "u9").Return(nil, domain.ErrGuestNotFound)
	m.users.EXPECT().GetByID(mock.Anything, "u9").Return(user, nil)
	m.guests.EXPECT().Add(mock.Anything, mock.MatchedBy(func(g *domain.EventGuest) bool {
		return g.ID == "u9" && g.Status == domain.GuestStatusInvited
	}), mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyAddedToGuestlist(mock.Anything, user, event).Return()

	res, err := svc.Scan(context.Background(), "e1", "host", "u9")

	require.NoError(t, err)
	assert.Equal(t, transition.ScanAddToGuestlist, res.Outcome)
	assert.Equal(t, "u9", res.Guest.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestGuestlistService_RequestRemoval_InvitedIsImmediate(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "g1").Return(&domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusInvited}, nil)
	m.guests.EXPECT().Delete(mock.Anything, "e1", "g1").Return(nil).Once()

	res, err := svc.RequestRemoval(context.Background(), "e1", "host", "g1")

	require.NoError(t, err)
	assert.True(t, res.Removed)
	assert.Empty(t, res.Token)
}

func TestGuestlistService_Removal_CheckedInNeedsOneConfirmation(t *testing.T) {
	svc, m := newGuestlistService(t)
	guest := &domain.EventGuest{ID: "g1", EventID: "e1", Status: domain.GuestStatusCheckedIn}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().Get(mock.Anything, "e1", "g1").Return(guest, nil)

	var token string
	var saved domain.PendingRemoval
	m.confirmations.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, 5*time.Minute).
		RunAndReturn(func(_ context.Context, tok string, p domain.PendingRemoval, _ time.Duration) error {
			token, saved = tok, p
			return nil
		}).Once()

	res, err := svc.RequestRemoval(context.Background(), "e1", "host", "g1")

	require.NoError(t, err)
	assert.False(t, res.Removed)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, token, res.Token)
	assert.Equal(t, domain.PendingRemoval{Kind: domain.RemovalGuest, Scope: "e1", Subject: "g1", ActorID: "host"}, saved)

	m.confirmations.EXPECT().Peek(mock.Anything, token).Return(&saved, nil).Once()
	m.confirmations.EXPECT().Take(mock.Anything, token).Return(&saved, nil).Once()
	m.guests.EXPECT().Delete(mock.Anything, "e1", "g1").Return(nil).Once()

	require.NoError(t, svc.ConfirmRemoval(context.Background(), "e1", "host", token))

	m.confirmations.EXPECT().Peek(mock.Anything, token).Return(nil, domain.ErrConfirmationNotFound).Once()

	err = svc.ConfirmRemoval(context.Background(), "e1", "host", token)
	assert.ErrorIs(t, err, domain.ErrConfirmationNotFound)
}

func TestGuestlistService_ConfirmRemoval_MismatchKeepsToken(t *testing.T) {
	tests := []struct {
		name    string
		eventID string
		actorID string
	}{
		{name: "other actor", eventID: "e1", actorID: "someone-else"},
		{name: "other event", eventID: "e2", actorID: "host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGuestlistService(t)
			pending := &domain.PendingRemoval{Kind: domain.RemovalGuest, Scope: "e1", Subject: "g1", ActorID: "host"}

			m.confirmations.EXPECT().Peek(mock.Anything, "tok").Return(pending, nil).Once()

			err := svc.ConfirmRemoval(context.Background(), tt.eventID, tt.actorID, "tok")

			assert.ErrorIs(t, err, domain.ErrConfirmationNotFound)
			m.confirmations.AssertNotCalled(t, "Take", mock.Anything, mock.Anything)
		})
	}
}

func TestGuestlistService_ApproveRequest(t *testing.T) {
	svc, m := newGuestlistService(t)
	event := testEvent(true)
	user := testUser("u1", nil)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeModerator), nil)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(true, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.guests.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	m.notifier.EXPECT().NotifyAddedToGuestlist(mock.Anything, user, event).Return()

	guest, err := svc.ApproveRequest(context.Background(), "e1", "host", "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", guest.ID)
	assert.Equal(t, "User host", guest.InvitedBy)

	time.Sleep(50 * time.Millisecond)
}

func TestGuestlistService_ApproveRequest_NoRequest(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(true), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.requests.EXPECT().Exists(mock.Anything, "e1", "u1").Return(false, nil)

	_, err := svc.ApproveRequest(context.Background(), "e1", "host", "u1")

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestGuestlistService_List_Sections(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(false), nil)
	m.users.EXPECT().GetByID(mock.Anything, "host").Return(hostUser("host", domain.MemberTypeMember), nil)
	m.guests.EXPECT().List(mock.Anything, "e1").Return([]domain.EventGuest{
		{ID: "1", Name: "bob", Status: domain.GuestStatusInvited},
		{ID: "2", Name: "Alice", Status: domain.GuestStatusCheckedIn},
		{ID: "3", Name: "Ann", Status: domain.GuestStatusInvited},
	}, nil)

	list, err := svc.List(context.Background(), "e1", "host")

	require.NoError(t, err)
	require.Len(t, list.Sections, 2)
	assert.Equal(t, "A", list.Sections[0].Title)
	assert.Len(t, list.Sections[0].Guests, 2)
	assert.Equal(t, 3, list.Summary.Total)
	assert.Equal(t, 1, list.Summary.CheckedIn)
}

func TestGuestlistService_Join_RepoError(t *testing.T) {
	svc, m := newGuestlistService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, errors.New("db down"))

	_, err := svc.Join(context.Background(), "e1", "u1")

	require.Error(t, err)
}
