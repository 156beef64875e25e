package transition

import (
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

// CheckIn moves an invited guest to checkedIn. There is no reverse transition.
func CheckIn(g *domain.EventGuest) ([]Effect, error) {
	switch g.Status {
	case domain.GuestStatusCheckedIn:
		return nil, domain.ErrAlreadyCheckedIn
	case domain.GuestStatusInvited:
		return []Effect{SetGuestStatus{
			EventID: g.EventID,
			GuestID: g.ID,
			Status:  domain.GuestStatusCheckedIn,
		}}, nil
	default:
		return nil, fmt.Errorf("%w: guest %s has status %q", domain.ErrMalformedRecord, g.ID, g.Status)
	}
}

type ScanOutcome string

const (
	ScanCheckIn        ScanOutcome = "checkIn"
	ScanAddToGuestlist ScanOutcome = "addToGuestlist"
)

// ResolveScan decides what a validated scan does. A matching guest is always
// checked in, whatever the host meant to do. Without a match an open event
// adds the scanned user (the caller builds the guest from the profile) and an
// invite-only event rejects the scan.
func ResolveScan(ev *domain.Event, existing *domain.EventGuest) (ScanOutcome, []Effect, error) {
	if existing != nil {
		effects, err := CheckIn(existing)
		return ScanCheckIn, effects, err
	}
	if ev.IsInviteOnly {
		return "", nil, domain.ErrNotOnGuestlist
	}
	return ScanAddToGuestlist, nil, nil
}

// AddScanned builds the effect adding a scanned app user to an open event.
func AddScanned(ev *domain.Event, u *domain.User, invitedBy string, now time.Time) []Effect {
	return []Effect{AddGuest{
		Guest: GuestFromUser(ev.ID, u, invitedBy, domain.GuestStatusInvited, now),
		Limit: ev.GuestLimit,
	}}
}

// ApproveRequest turns a pending request into a guestlist entry. Adding the
// guest drops the request in the same write.
func ApproveRequest(ev *domain.Event, u *domain.User, approvedBy string, now time.Time) []Effect {
	return []Effect{AddGuest{
		Guest: GuestFromUser(ev.ID, u, approvedBy, domain.GuestStatusInvited, now),
		Limit: ev.GuestLimit,
	}}
}

// GuestRemoval removes a guest; a checked-in guest needs one confirmation first.
func GuestRemoval(g *domain.EventGuest) Removal {
	return Removal{
		Effects:           []Effect{DeleteGuest{EventID: g.EventID, GuestID: g.ID}},
		NeedsConfirmation: g.Status == domain.GuestStatusCheckedIn,
	}
}
