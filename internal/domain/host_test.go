package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostMemberType_PrivilegeIsStrictTotalOrder(t *testing.T) {
	for i := 1; i < len(MemberTypes); i++ {
		assert.Less(t, MemberTypes[i-1].Privilege(), MemberTypes[i].Privilege())
	}
	assert.Equal(t, MaxMemberType, MemberTypes[len(MemberTypes)-1])
}

func TestHostMemberType_Valid(t *testing.T) {
	assert.True(t, MemberTypeModerator.Valid())
	assert.False(t, HostMemberType("owner").Valid())
	assert.Equal(t, 0, HostMemberType("").Privilege())
}

func TestUser_AssociatedHostsSorted(t *testing.T) {
	u := &User{HostMemberTypes: map[string]HostMemberType{
		"h2": MemberTypeAdmin,
		"h1": MemberTypeMember,
	}}

	assert.Equal(t, []string{"h1", "h2"}, u.AssociatedHosts())
	assert.Equal(t, MemberTypeAdmin, u.MemberType("h2"))
	assert.Equal(t, HostMemberType(""), u.MemberType("h3"))
}
