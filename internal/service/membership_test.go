package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type membershipMocks struct {
	hosts         *mocks.MockHostRepo
	members       *mocks.MockMemberRepo
	users         *mocks.MockUserRepo
	confirmations *mocks.MockConfirmationStore
	notifier      *mocks.MockNotifier
}

func newMembershipService(t *testing.T) (*MembershipService, membershipMocks) {
	m := membershipMocks{
		hosts:         mocks.NewMockHostRepo(t),
		members:       mocks.NewMockMemberRepo(t),
		users:         mocks.NewMockUserRepo(t),
		confirmations: mocks.NewMockConfirmationStore(t),
		notifier:      mocks.NewMockNotifier(t),
	}
	svc := NewMembershipService(m.hosts, m.members, m.users, m.confirmations, m.notifier, 5*time.Minute, newTestLogger(t))
	return svc, m
}

func joined(userID string) *domain.HostUserLink {
	return &domain.HostUserLink{HostID: "h1", UserID: userID, Status: domain.MemberJoined}
}

func TestMembershipService_Invite(t *testing.T) {
	svc, m := newMembershipService(t)
	host := &domain.Host{ID: "h1", Name: "Sigma"}
	user := testUser("u2", nil)

	m.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(host, nil)
	m.users.EXPECT().GetByID(mock.Anything, "admin").Return(hostUser("admin", domain.MemberTypeAdmin), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(user, nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(nil, domain.ErrMemberNotFound)
	m.members.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(l *domain.HostUserLink) bool {
		return l.HostID == "h1" && l.UserID == "u2" && l.Status == domain.MemberInvited
	})).Return(nil)
	m.notifier.EXPECT().NotifyHostInvite(mock.Anything, user, host).Return()

	link, err := svc.Invite(context.Background(), "h1", "admin", "u2")

	require.NoError(t, err)
	assert.Equal(t, domain.MemberInvited, link.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestMembershipService_Invite_AlreadyLinked(t *testing.T) {
	svc, m := newMembershipService(t)

	m.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.Host{ID: "h1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "admin").Return(hostUser("admin", domain.MemberTypeAdmin), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(testUser("u2", nil), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(&domain.HostUserLink{HostID: "h1", UserID: "u2", Status: domain.MemberInvited}, nil)

	_, err := svc.Invite(context.Background(), "h1", "admin", "u2")

	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestMembershipService_Accept(t *testing.T) {
	svc, m := newMembershipService(t)

	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(&domain.HostUserLink{HostID: "h1", UserID: "u2", Status: domain.MemberInvited}, nil)
	m.members.EXPECT().Join(mock.Anything, "h1", "u2", domain.MemberTypeMember).Return(nil).Once()

	require.NoError(t, svc.Accept(context.Background(), "h1", "u2"))
}

func TestMembershipService_Accept_FailedWriteCanBeRepeated(t *testing.T) {
	svc, m := newMembershipService(t)
	invited := &domain.HostUserLink{HostID: "h1", UserID: "u2", Status: domain.MemberInvited}

	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(invited, nil).Twice()
	m.members.EXPECT().Join(mock.Anything, "h1", "u2", domain.MemberTypeMember).Return(errors.New("network")).Once()

	err := svc.Accept(context.Background(), "h1", "u2")
	require.Error(t, err)

	m.members.EXPECT().Join(mock.Anything, "h1", "u2", domain.MemberTypeMember).Return(nil).Once()

	require.NoError(t, svc.Accept(context.Background(), "h1", "u2"))
}

func TestMembershipService_Accept_AlreadyJoinedWritesNothing(t *testing.T) {
	svc, m := newMembershipService(t)

	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)

	require.NoError(t, svc.Accept(context.Background(), "h1", "u2"))
}

func TestMembershipService_Decline_Joined(t *testing.T) {
	svc, m := newMembershipService(t)

	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)

	err := svc.Decline(context.Background(), "h1", "u2")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMembershipService_Actions_ModeratorOnMember(t *testing.T) {
	svc, m := newMembershipService(t)

	m.users.EXPECT().GetByID(mock.Anything, "mod").Return(hostUser("mod", domain.MemberTypeModerator), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(hostUser("u2", domain.MemberTypeMember), nil)

	actions, err := svc.Actions(context.Background(), "h1", "mod", "u2")

	require.NoError(t, err)
	assert.Equal(t, []domain.HostMemberType{domain.MemberTypeMember}, actions.Assignable)
	assert.False(t, actions.CanRemove)
}

func TestMembershipService_Actions_EqualRankOffersNothing(t *testing.T) {
	svc, m := newMembershipService(t)

	m.users.EXPECT().GetByID(mock.Anything, "a1").Return(hostUser("a1", domain.MemberTypeAdmin), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "a2").Return(joined("a2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "a2").Return(hostUser("a2", domain.MemberTypeAdmin), nil)

	actions, err := svc.Actions(context.Background(), "h1", "a1", "a2")

	require.NoError(t, err)
	assert.True(t, actions.Empty())
}

func TestMembershipService_AssignRole_ForbiddenAboveOwnRank(t *testing.T) {
	svc, m := newMembershipService(t)

	m.users.EXPECT().GetByID(mock.Anything, "mod").Return(hostUser("mod", domain.MemberTypeModerator), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(hostUser("u2", domain.MemberTypeMember), nil)

	err := svc.AssignRole(context.Background(), "h1", "mod", "u2", domain.MemberTypeAdmin)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMembershipService_AssignRole(t *testing.T) {
	svc, m := newMembershipService(t)

	m.users.EXPECT().GetByID(mock.Anything, "admin").Return(hostUser("admin", domain.MemberTypeAdmin), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(hostUser("u2", domain.MemberTypeMember), nil)
	m.users.EXPECT().SetMemberType(mock.Anything, "u2", "h1", domain.MemberTypeModerator).Return(nil).Once()

	require.NoError(t, svc.AssignRole(context.Background(), "h1", "admin", "u2", domain.MemberTypeModerator))
}

func TestMembershipService_RequestRemoval_InvitedIsImmediate(t *testing.T) {
	svc, m := newMembershipService(t)

	m.users.EXPECT().GetByID(mock.Anything, "admin").Return(hostUser("admin", domain.MemberTypeAdmin), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(&domain.HostUserLink{HostID: "h1", UserID: "u2", Status: domain.MemberInvited}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(testUser("u2", nil), nil)
	m.members.EXPECT().Remove(mock.Anything, "h1", "u2").Return(nil).Once()

	res, err := svc.RequestRemoval(context.Background(), "h1", "admin", "u2")

	require.NoError(t, err)
	assert.True(t, res.Removed)
}

func TestMembershipService_Removal_JoinedNeedsConfirmation(t *testing.T) {
	svc, m := newMembershipService(t)
	pending := domain.PendingRemoval{Kind: domain.RemovalMember, Scope: "h1", Subject: "u2", ActorID: "admin"}

	m.users.EXPECT().GetByID(mock.Anything, "admin").Return(hostUser("admin", domain.MemberTypeAdmin), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(hostUser("u2", domain.MemberTypeModerator), nil)
	m.confirmations.EXPECT().Save(mock.Anything, mock.Anything, pending, 5*time.Minute).Return(nil).Once()

	res, err := svc.RequestRemoval(context.Background(), "h1", "admin", "u2")

	require.NoError(t, err)
	assert.False(t, res.Removed)
	require.NotEmpty(t, res.Token)

	m.confirmations.EXPECT().Peek(mock.Anything, res.Token).Return(&pending, nil).Once()
	m.confirmations.EXPECT().Take(mock.Anything, res.Token).Return(&pending, nil).Once()
	m.members.EXPECT().Remove(mock.Anything, "h1", "u2").Return(nil).Once()

	require.NoError(t, svc.ConfirmRemoval(context.Background(), "h1", "admin", res.Token))
}

func TestMembershipService_ConfirmRemoval_FailedWriteKeepsMember(t *testing.T) {
	svc, m := newMembershipService(t)
	pending := domain.PendingRemoval{Kind: domain.RemovalMember, Scope: "h1", Subject: "u2", ActorID: "admin"}

	m.confirmations.EXPECT().Peek(mock.Anything, "tok").Return(&pending, nil).Once()
	m.confirmations.EXPECT().Take(mock.Anything, "tok").Return(&pending, nil).Once()
	m.users.EXPECT().GetByID(mock.Anything, "admin").Return(hostUser("admin", domain.MemberTypeAdmin), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(hostUser("u2", domain.MemberTypeModerator), nil)
	m.members.EXPECT().Remove(mock.Anything, "h1", "u2").Return(errors.New("network")).Once()

	err := svc.ConfirmRemoval(context.Background(), "h1", "admin", "tok")
	require.Error(t, err)

	// The link and the role were left in place, so the removal can be asked for again.
	m.confirmations.EXPECT().Save(mock.Anything, mock.Anything, pending, 5*time.Minute).Return(nil).Once()

	res, err := svc.RequestRemoval(context.Background(), "h1", "admin", "u2")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestMembershipService_ConfirmRemoval_MismatchKeepsToken(t *testing.T) {
	svc, m := newMembershipService(t)
	pending := &domain.PendingRemoval{Kind: domain.RemovalMember, Scope: "h1", Subject: "u2", ActorID: "admin"}

	m.confirmations.EXPECT().Peek(mock.Anything, "tok").Return(pending, nil).Once()

	err := svc.ConfirmRemoval(context.Background(), "h1", "mod", "tok")

	assert.ErrorIs(t, err, domain.ErrConfirmationNotFound)
	m.confirmations.AssertNotCalled(t, "Take", mock.Anything, mock.Anything)
}

func TestMembershipService_RequestRemoval_ModeratorForbidden(t *testing.T) {
	svc, m := newMembershipService(t)

	m.users.EXPECT().GetByID(mock.Anything, "mod").Return(hostUser("mod", domain.MemberTypeModerator), nil)
	m.members.EXPECT().GetLink(mock.Anything, "h1", "u2").Return(joined("u2"), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(hostUser("u2", domain.MemberTypeMember), nil)

	_, err := svc.RequestRemoval(context.Background(), "h1", "mod", "u2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMembershipService_ListMembers(t *testing.T) {
	svc, m := newMembershipService(t)
	now := time.Now()

	m.members.EXPECT().List(mock.Anything, "h1").Return([]domain.HostMember{
		{HostUserLink: domain.HostUserLink{UserID: "a", Status: domain.MemberJoined, Timestamp: now}, DisplayName: "Zed", MemberType: domain.MemberTypeAdmin},
		{HostUserLink: domain.HostUserLink{UserID: "b", Status: domain.MemberInvited, Timestamp: now}, DisplayName: "Amy"},
		{HostUserLink: domain.HostUserLink{UserID: "c", Status: domain.MemberJoined, Timestamp: now}, DisplayName: "Bea", MemberType: domain.MemberTypeMember},
	}, nil)

	buckets, err := svc.ListMembers(context.Background(), "h1")

	require.NoError(t, err)
	require.Len(t, buckets.Invited, 1)
	require.Len(t, buckets.Joined, 2)
	assert.Equal(t, "a", buckets.Joined[0].UserID)
}
