// Package sections derives the display buckets of synchronized collections.
// Every function is a pure function of its input slice and returns new slices.
package sections

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

const otherSection = "#"

type GuestSection struct {
	Title  string              `json:"title"`
	Guests []domain.EventGuest `json:"guests"`
}

type GuestSummary struct {
	Total     int `json:"total"`
	Invited   int `json:"invited"`
	CheckedIn int `json:"checked_in"`
}

// Guestlist is the grouped guestlist of one event.
type Guestlist struct {
	Sections []GuestSection `json:"sections"`
	Summary  GuestSummary   `json:"summary"`
}

func BuildGuestlist(guests []domain.EventGuest) Guestlist {
	return Guestlist{
		Sections: GuestSections(guests),
		Summary:  Summarize(guests),
	}
}

// GuestSections groups guests by the first letter of their name. Names that do
// not start with a letter go to a trailing "#" section.
func GuestSections(guests []domain.EventGuest) []GuestSection {
	byTitle := make(map[string][]domain.EventGuest)
	for _, g := range guests {
		title := sectionTitle(g.Name)
		byTitle[title] = append(byTitle[title], g)
	}

	titles := make([]string, 0, len(byTitle))
	for t := range byTitle {
		titles = append(titles, t)
	}
	slices.SortFunc(titles, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == otherSection:
			return 1
		case b == otherSection:
			return -1
		}
		return strings.Compare(a, b)
	})

	out := make([]GuestSection, 0, len(titles))
	for _, t := range titles {
		gs := byTitle[t]
		slices.SortStableFunc(gs, func(a, b domain.EventGuest) int {
			if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		out = append(out, GuestSection{Title: t, Guests: gs})
	}
	return out
}

func sectionTitle(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return otherSection
	}
	return string(unicode.ToUpper(r))
}

func Summarize(guests []domain.EventGuest) GuestSummary {
	s := GuestSummary{Total: len(guests)}
	for _, g := range guests {
		if g.Status == domain.GuestStatusCheckedIn {
			s.CheckedIn++
		} else {
			s.Invited++
		}
	}
	return s
}
