package sections

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
)

type MemberBuckets struct {
	Invited []domain.HostMember `json:"invited"`
	Joined  []domain.HostMember `json:"joined"`
}

// BuildMembers splits a member list into pending invitations (oldest first)
// and joined members (highest role first, then by name).
func BuildMembers(members []domain.HostMember) MemberBuckets {
	out := MemberBuckets{
		Invited: []domain.HostMember{},
		Joined:  []domain.HostMember{},
	}
	for _, m := range members {
		if m.Status == domain.MemberJoined {
			out.Joined = append(out.Joined, m)
		} else {
			out.Invited = append(out.Invited, m)
		}
	}

	slices.SortStableFunc(out.Invited, func(a, b domain.HostMember) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	slices.SortStableFunc(out.Joined, func(a, b domain.HostMember) int {
		if c := cmp.Compare(b.MemberType.Privilege(), a.MemberType.Privilege()); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
	})
	return out
}
