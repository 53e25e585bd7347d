package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"Admin", RoleAdmin, false},
		{"Customer", RoleCustomer, false},
		{"admin", "", true},
		{"", "", true},
		{"Root", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRole, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestPrincipal_CanAccess(t *testing.T) {
	admin := Principal{UserID: "a1", Role: RoleAdmin}
	customer := Principal{UserID: "u1", Role: RoleCustomer}

	assert.True(t, admin.CanAccess("anyone"))
	assert.True(t, customer.CanAccess("u1"))
	assert.False(t, customer.CanAccess("u2"))
	assert.False(t, Principal{Role: RoleCustomer}.CanAccess(""))
}

func TestUserPatch_IsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	name := "bob"
	assert.False(t, UserPatch{Username: &name}.IsEmpty())
}
