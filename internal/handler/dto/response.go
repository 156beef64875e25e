package dto

import (
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type StateResponse struct {
	State string `json:"state"`
}

// UserResponse is the public profile; the notification chat id is never exposed.
type UserResponse struct {
	ID              string            `json:"id"`
	Username        string            `json:"username"`
	DisplayName     string            `json:"display_name"`
	University      string            `json:"university"`
	Age             *int              `json:"age,omitempty"`
	Gender          string            `json:"gender"`
	HostMemberTypes map[string]string `json:"host_id_to_member_type_map"`
	AssociatedHosts []string          `json:"associated_host_ids"`
	CreatedAt       string            `json:"created_at"`
}

func ToUserResponse(u *domain.User) UserResponse {
	roles := make(map[string]string, len(u.HostMemberTypes))
	for hostID, t := range u.HostMemberTypes {
		roles[hostID] = string(t)
	}

	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		DisplayName:     u.DisplayName,
		University:      u.University,
		Age:             u.Age,
		Gender:          string(u.Gender),
		HostMemberTypes: roles,
		AssociatedHosts: u.AssociatedHosts(),
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}
