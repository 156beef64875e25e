package transition

import (
	"fmt"
	"slices"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

// MemberActions is what an actor is offered on one member row.
type MemberActions struct {
	Assignable               []domain.HostMemberType `json:"assignable"`
	CanRemove                bool                    `json:"can_remove"`
	RemovalNeedsConfirmation bool                    `json:"removal_needs_confirmation"`
}

// Empty reports whether no action is offered.
func (a MemberActions) Empty() bool {
	return len(a.Assignable) == 0 && !a.CanRemove
}

// ActionsFor returns the actions actor may take on target. Nothing is offered
// unless the actor outranks the target. Joined members can be given any role
// below the actor's rank, their current one included, so a moderator acting on
// a member is offered {member}; the top role may also appoint its peers. Only
// the top role removes.
func ActionsFor(actor, target domain.HostMemberType, targetStatus domain.MemberInviteStatus) MemberActions {
	var out MemberActions
	if actor.Privilege() <= target.Privilege() {
		return out
	}

	if targetStatus == domain.MemberJoined {
		for _, role := range domain.MemberTypes {
			if role.Privilege() < actor.Privilege() || actor == domain.MaxMemberType {
				out.Assignable = append(out.Assignable, role)
			}
		}
	}

	if actor == domain.MaxMemberType {
		out.CanRemove = true
		out.RemovalNeedsConfirmation = targetStatus == domain.MemberJoined
	}

	return out
}

func AssignRole(
	hostID, userID string,
	actor, target domain.HostMemberType,
	targetStatus domain.MemberInviteStatus,
	role domain.HostMemberType,
) ([]Effect, error) {
	actions := ActionsFor(actor, target, targetStatus)
	if !slices.Contains(actions.Assignable, role) {
		return nil, fmt.Errorf("%w: %s cannot assign %s to %s", domain.ErrForbidden, actor, role, target)
	}
	return []Effect{SetMemberType{UserID: userID, HostID: hostID, Type: role}}, nil
}

func MemberRemoval(
	hostID, userID string,
	actor, target domain.HostMemberType,
	targetStatus domain.MemberInviteStatus,
) (Removal, error) {
	actions := ActionsFor(actor, target, targetStatus)
	if !actions.CanRemove {
		return Removal{}, fmt.Errorf("%w: %s cannot remove %s", domain.ErrForbidden, actor, target)
	}
	return Removal{
		Effects:           []Effect{RemoveMember{HostID: hostID, UserID: userID}},
		NeedsConfirmation: actions.RemovalNeedsConfirmation,
	}, nil
}

// Invite links userID to hostID as invited. Any current member may invite.
func Invite(hostID, userID string, actor domain.HostMemberType, existing *domain.HostUserLink, now time.Time) ([]Effect, error) {
	if !actor.Valid() {
		return nil, fmt.Errorf("%w: only members can invite", domain.ErrForbidden)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyMember
	}
	return []Effect{CreateMemberLink{Link: domain.HostUserLink{
		HostID:    hostID,
		UserID:    userID,
		Status:    domain.MemberInvited,
		Timestamp: now.UTC(),
	}}}, nil
}

// Accept joins an invited user as a member. Accepting twice is a no-op.
func Accept(link *domain.HostUserLink) []Effect {
	if link.Status == domain.MemberJoined {
		return nil
	}
	return []Effect{JoinMember{HostID: link.HostID, UserID: link.UserID, Type: domain.MemberTypeMember}}
}

// Decline deletes a pending invitation.
func Decline(link *domain.HostUserLink) ([]Effect, error) {
	if link.Status != domain.MemberInvited {
		return nil, fmt.Errorf("%w: invitation already accepted", domain.ErrInvalidTransition)
	}
	return []Effect{DeleteMemberLink{HostID: link.HostID, UserID: link.UserID}}, nil
}
