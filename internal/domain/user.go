package domain

import (
	"sort"
	"time"
)

type RelationshipState string

const (
	RelationshipNotFriends      RelationshipState = "notFriends"
	RelationshipRequestSent     RelationshipState = "requestSent"
	RelationshipRequestReceived RelationshipState = "requestReceived"
	RelationshipFriends         RelationshipState = "friends"
	RelationshipBlocked         RelationshipState = "blocked"
)

type User struct {
	ID              string                    `json:"id"`
	Username        string                    `json:"username"`
	DisplayName     string                    `json:"display_name"`
	University      string                    `json:"university"`
	Age             *int                      `json:"age,omitempty"`
	Gender          Gender                    `json:"gender"`
	TelegramChatID  *int64                    `json:"telegram_chat_id"`
	HostMemberTypes map[string]HostMemberType `json:"host_id_to_member_type_map"`
	CreatedAt       time.Time                 `json:"created_at"`
}

// MemberType returns the user's role for hostID, or "" when the user holds none.
func (u *User) MemberType(hostID string) HostMemberType {
	return u.HostMemberTypes[hostID]
}

// AssociatedHosts is derived from the role map and is not authoritative.
func (u *User) AssociatedHosts() []string {
	ids := make([]string, 0, len(u.HostMemberTypes))
	for id := range u.HostMemberTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type CreateUserInput struct {
	Username       string `validate:"required,min=3,max=30,alphanum"`
	DisplayName    string `validate:"required,max=100"`
	University     string `validate:"max=100"`
	Age            *int   `validate:"omitempty,gte=0,lte=130"`
	Gender         Gender `validate:"omitempty,oneof=woman man other preferNotToSay"`
	TelegramChatID *int64
}
