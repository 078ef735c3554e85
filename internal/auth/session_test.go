package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthorized(t *testing.T) {
	admin := Session{Username: "admin", Role: RoleAdmin}
	staff := Session{Username: "kamala", Role: RoleStaff}

	// ADMIN satisfies any requirement.
	assert.True(t, admin.IsAuthorized(RoleAdmin))
	assert.True(t, admin.IsAuthorized(RoleStaff))

	// STAFF satisfies only STAFF-level requirements.
	assert.True(t, staff.IsAuthorized(RoleStaff))
	assert.False(t, staff.IsAuthorized(RoleAdmin))

	// A zero session is authorized for nothing.
	assert.False(t, Session{}.IsAuthorized(RoleStaff))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	r, ok = ParseRole("STAFF")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, r)

	for _, s := range []string{"", "admin", "MANAGER", "root"} {
		_, ok := ParseRole(s)
		assert.False(t, ok, s)
	}
}
