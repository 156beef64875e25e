package sections

import (
	"slices"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

// AttendeeEvents is the attendee-facing grouping; past events are hidden.
type AttendeeEvents struct {
	Current  []domain.Event `json:"current"`
	Upcoming []domain.Event `json:"upcoming"`
}

// HostEvents is the management grouping; ongoing and upcoming collapse to Active.
type HostEvents struct {
	Active []domain.Event `json:"active"`
	Past   []domain.Event `json:"past"`
}

func BuildAttendeeEvents(events []domain.Event, now time.Time) AttendeeEvents {
	out := AttendeeEvents{Current: []domain.Event{}, Upcoming: []domain.Event{}}
	for _, e := range events {
		switch e.State(now) {
		case domain.EventOngoing:
			out.Current = append(out.Current, e)
		case domain.EventUpcoming:
			out.Upcoming = append(out.Upcoming, e)
		}
	}
	slices.SortStableFunc(out.Current, byStartAsc)
	slices.SortStableFunc(out.Upcoming, byStartAsc)
	return out
}

func BuildHostEvents(events []domain.Event, now time.Time) HostEvents {
	out := HostEvents{Active: []domain.Event{}, Past: []domain.Event{}}
	for _, e := range events {
		if e.State(now) == domain.EventPast {
			out.Past = append(out.Past, e)
		} else {
			out.Active = append(out.Active, e)
		}
	}
	slices.SortStableFunc(out.Active, byStartAsc)
	slices.SortStableFunc(out.Past, func(a, b domain.Event) int {
		return b.EndDate.Compare(a.EndDate)
	})
	return out
}

func byStartAsc(a, b domain.Event) int {
	return a.StartDate.Compare(b.StartDate)
}
