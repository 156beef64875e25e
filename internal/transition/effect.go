// Package transition holds the pure state machines of the guestlist and the
// host member list. Functions here never perform I/O: they return the next
// state together with the remote writes (effects) the caller has to perform.
package transition

import "github.com/Peytose/mixer-app-sub003/internal/domain"

// Effect is a remote write produced by a transition.
type Effect interface {
	effect()
}

type CreateRequest struct {
	EventID string
	UserID  string
}

type DeleteRequest struct {
	EventID string
	UserID  string
}

// AddGuest inserts a guest record, subject to the event's guest limit. A
// pending join request of the same user is dropped with it.
type AddGuest struct {
	Guest domain.EventGuest
	Limit *int
}

type DeleteGuest struct {
	EventID string
	GuestID string
}

type SetGuestStatus struct {
	EventID string
	GuestID string
	Status  domain.GuestStatus
}

type CreateMemberLink struct {
	Link domain.HostUserLink
}

// JoinMember marks an invited link joined and writes the user's role for
// HostID as one remote write.
type JoinMember struct {
	HostID string
	UserID string
	Type   domain.HostMemberType
}

// DeleteMemberLink drops a link that carries no role (a pending invitation).
type DeleteMemberLink struct {
	HostID string
	UserID string
}

// SetMemberType writes hostIdToMemberTypeMap[HostID] on the user document.
type SetMemberType struct {
	UserID string
	HostID string
	Type   domain.HostMemberType
}

// RemoveMember deletes the link and the user's role for HostID as one
// remote write.
type RemoveMember struct {
	HostID string
	UserID string
}

func (CreateRequest) effect()    {}
func (DeleteRequest) effect()    {}
func (AddGuest) effect()         {}
func (DeleteGuest) effect()      {}
func (SetGuestStatus) effect()   {}
func (CreateMemberLink) effect() {}
func (JoinMember) effect()       {}
func (DeleteMemberLink) effect() {}
func (SetMemberType) effect()    {}
func (RemoveMember) effect()     {}

// Removal is the first phase of a destructive action. When NeedsConfirmation
// is set the effects must not run until the caller confirms.
type Removal struct {
	Effects           []Effect
	NeedsConfirmation bool
}
