package dto

import (
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
}

func (p *GeoPointRequest) toDomain() *domain.GeoPoint {
	if p == nil {
		return nil
	}
	return &domain.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	DisplayName    string `json:"display_name" binding:"required"`
	University     string `json:"university"`
	Age            *int   `json:"age"`
	Gender         string `json:"gender"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

func (r CreateUserRequest) ToInput() domain.CreateUserInput {
	return domain.CreateUserInput{
		Username:       r.Username,
		DisplayName:    r.DisplayName,
		University:     r.University,
		Age:            r.Age,
		Gender:         domain.Gender(r.Gender),
		TelegramChatID: r.TelegramChatID,
	}
}

type CreateHostRequest struct {
	Name         string           `json:"name" binding:"required"`
	Username     string           `json:"username" binding:"required"`
	Description  string           `json:"description"`
	Tagline      string           `json:"tagline"`
	ContactEmail string           `json:"contact_email"`
	Type         string           `json:"type" binding:"required"`
	Address      string           `json:"address"`
	Location     *GeoPointRequest `json:"location"`
	ImageURL     string           `json:"image_url"`
	EventTypes   []string         `json:"event_types"`
}

func (r CreateHostRequest) ToInput() domain.CreateHostInput {
	return domain.CreateHostInput{
		Name:         r.Name,
		Username:     r.Username,
		Description:  r.Description,
		Tagline:      r.Tagline,
		ContactEmail: r.ContactEmail,
		Type:         domain.HostType(r.Type),
		Address:      r.Address,
		Location:     r.Location.toDomain(),
		ImageURL:     r.ImageURL,
		EventTypes:   r.EventTypes,
	}
}

type UpdateHostRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Tagline      *string          `json:"tagline"`
	ContactEmail *string          `json:"contact_email"`
	Address      *string          `json:"address"`
	Location     *GeoPointRequest `json:"location"`
	ImageURL     *string          `json:"image_url"`
	EventTypes   *[]string        `json:"event_types"`
}

func (r UpdateHostRequest) ToInput() domain.UpdateHostInput {
	return domain.UpdateHostInput{
		Name:         r.Name,
		Description:  r.Description,
		Tagline:      r.Tagline,
		ContactEmail: r.ContactEmail,
		Address:      r.Address,
		Location:     r.Location.toDomain(),
		ImageURL:     r.ImageURL,
		EventTypes:   r.EventTypes,
	}
}

type CreateEventRequest struct {
	HostID       string           `json:"host_id" binding:"required"`
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description"`
	StartDate    string           `json:"start_date" binding:"required"`
	EndDate      string           `json:"end_date" binding:"required"`
	Address      string           `json:"address"`
	Location     *GeoPointRequest `json:"location"`
	IsPrivate    bool             `json:"is_private"`
	IsInviteOnly bool             `json:"is_invite_only"`
	GuestLimit   *int             `json:"guest_limit"`
	InviteLimit  *int             `json:"invite_limit"`
	Amenities    []string         `json:"amenities"`
}

func (r CreateEventRequest) ToInput() (domain.CreateEventInput, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return domain.CreateEventInput{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return domain.CreateEventInput{}, err
	}

	return domain.CreateEventInput{
		HostID:       r.HostID,
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    start,
		EndDate:      end,
		Address:      r.Address,
		Location:     r.Location.toDomain(),
		IsPrivate:    r.IsPrivate,
		IsInviteOnly: r.IsInviteOnly,
		GuestLimit:   r.GuestLimit,
		InviteLimit:  r.InviteLimit,
		Amenities:    r.Amenities,
	}, nil
}

type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Amenities   *[]string `json:"amenities"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
}

func (r UpdateEventRequest) ToInput() (domain.UpdateEventInput, error) {
	in := domain.UpdateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Amenities:   r.Amenities,
	}
	if r.StartDate != nil {
		t, err := parseDate("start_date", *r.StartDate)
		if err != nil {
			return domain.UpdateEventInput{}, err
		}
		in.StartDate = &t
	}
	if r.EndDate != nil {
		t, err := parseDate("end_date", *r.EndDate)
		if err != nil {
			return domain.UpdateEventInput{}, err
		}
		in.EndDate = &t
	}
	return in, nil
}

type AddGuestRequest struct {
	Name       string  `json:"name" binding:"required"`
	University string  `json:"university"`
	Age        *int    `json:"age"`
	Gender     string  `json:"gender"`
	InvitedBy  string  `json:"invited_by"`
	UserID     *string `json:"user_id"`
}

func (r AddGuestRequest) ToInput() domain.AddGuestInput {
	return domain.AddGuestInput{
		Name:       r.Name,
		University: r.University,
		Age:        r.Age,
		Gender:     domain.Gender(r.Gender),
		InvitedBy:  r.InvitedBy,
		UserID:     r.UserID,
	}
}

type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type InviteRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member moderator admin"`
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format, expected RFC3339", field)
	}
	return t, nil
}
