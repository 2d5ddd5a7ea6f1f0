package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "administrator", in: "administrator", want: RoleAdministrator},
		{name: "admin alias", in: "ADMIN", want: RoleAdministrator},
		{name: "employee", in: "employee", want: RoleEmployee},
		{name: "employee with spaces", in: "  Employee ", want: RoleEmployee},
		{name: "unknown degrades to none", in: "superuser", want: RoleNone},
		{name: "empty degrades to none", in: "", want: RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.True(t, Session{Token: "abc", User: User{Username: "staff"}}.Authenticated())
}

func TestSessionIsAdministrator(t *testing.T) {
	admin := Session{Token: "t", User: User{Username: "a", Role: RoleAdministrator}}
	employee := Session{Token: "t", User: User{Username: "e", Role: RoleEmployee}}

	assert.True(t, admin.IsAdministrator())
	assert.False(t, employee.IsAdministrator())
}

func TestUserValid(t *testing.T) {
	assert.False(t, User{}.Valid())
	assert.True(t, User{Username: "staff"}.Valid())
}
