package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrHostNotFound         = errors.New("host not found")
	ErrGuestNotFound        = errors.New("guest not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrRequestNotFound      = errors.New("join request not found")
	ErrConfirmationNotFound = errors.New("confirmation not found or expired")
)

var (
	ErrInvalidTransition  = errors.New("action is not allowed in the current state")
	ErrAlreadyCheckedIn   = errors.New("guest is already checked in")
	ErrAlreadyOnGuestlist = errors.New("user is already on the guestlist")
	ErrAlreadyRequested   = errors.New("user already requested to join this event")
	ErrAlreadyMember      = errors.New("user is already linked to this host")
	ErrGuestlistFull      = errors.New("guestlist is full")
	ErrNotOnGuestlist     = errors.New("not on guestlist")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrActionInFlight     = errors.New("action is already in progress")
)

var (
	ErrForbidden = errors.New("insufficient privilege for this action")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidScanPayload = errors.New("invalid scan payload")
)

// ErrMalformedRecord is returned when a stored row cannot be mapped to its record type.
var ErrMalformedRecord = errors.New("malformed record")
