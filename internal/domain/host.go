package domain

import "time"

type HostType string

const (
	HostTypeFraternity   HostType = "fraternity"
	HostTypeSorority     HostType = "sorority"
	HostTypeClub         HostType = "club"
	HostTypeOrganization HostType = "organization"
	HostTypeOther        HostType = "other"
)

type Host struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Description  string    `json:"description"`
	Tagline      string    `json:"tagline"`
	ContactEmail string    `json:"contact_email"`
	Type         HostType  `json:"type"`
	Address      string    `json:"address"`
	Location     *GeoPoint `json:"location,omitempty"`
	ImageURL     string    `json:"image_url"`
	EventTypes   []string  `json:"event_types"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateHostInput struct {
	Name         string   `validate:"required,max=100"`
	Username     string   `validate:"required,min=3,max=30,alphanum"`
	Description  string   `validate:"max=2000"`
	Tagline      string   `validate:"max=140"`
	ContactEmail string   `validate:"omitempty,email"`
	Type         HostType `validate:"required,oneof=fraternity sorority club organization other"`
	Address      string
	Location     *GeoPoint
	ImageURL     string `validate:"omitempty,url"`
	EventTypes   []string
}

// UpdateHostInput carries settings edits; nil fields are left unchanged.
type UpdateHostInput struct {
	Name         *string `validate:"omitempty,min=1,max=100"`
	Description  *string `validate:"omitempty,max=2000"`
	Tagline      *string `validate:"omitempty,max=140"`
	ContactEmail *string `validate:"omitempty,email"`
	Address      *string
	Location     *GeoPoint
	ImageURL     *string `validate:"omitempty,url"`
	EventTypes   *[]string
}

type MemberInviteStatus string

const (
	MemberInvited MemberInviteStatus = "invited"
	MemberJoined  MemberInviteStatus = "joined"
)

// HostMemberType is a membership role. Roles are totally ordered by Privilege.
type HostMemberType string

const (
	MemberTypeMember    HostMemberType = "member"
	MemberTypeModerator HostMemberType = "moderator"
	MemberTypeAdmin     HostMemberType = "admin"
)

// MemberTypes lists every role in ascending privilege.
var MemberTypes = []HostMemberType{MemberTypeMember, MemberTypeModerator, MemberTypeAdmin}

// MaxMemberType is the only role allowed to remove members.
const MaxMemberType = MemberTypeAdmin

// Privilege returns the rank of the role; unknown roles rank 0.
func (t HostMemberType) Privilege() int {
	switch t {
	case MemberTypeMember:
		return 1
	case MemberTypeModerator:
		return 2
	case MemberTypeAdmin:
		return 3
	default:
		return 0
	}
}

func (t HostMemberType) Valid() bool {
	return t.Privilege() > 0
}

// HostUserLink is the member-list record of one user for one host. UserID is
// the record identifier.
type HostUserLink struct {
	HostID    string             `json:"host_id"`
	UserID    string             `json:"user_id"`
	Status    MemberInviteStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

// HostMember is a link joined with the user's profile and role.
type HostMember struct {
	HostUserLink
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	MemberType  HostMemberType `json:"member_type"`
}
