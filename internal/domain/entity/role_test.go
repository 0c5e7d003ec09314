package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"CUSTOMER", "ADMIN", "SUPPLIER", "CUSTOMER"})

	assert.Equal(t, Roles{RoleCustomer, RoleSupplier}, roles)
	assert.True(t, roles.IsStaff())
	assert.False(t, Roles{RoleCustomer}.IsStaff())
	assert.Equal(t, []string{"CUSTOMER", "SUPPLIER"}, roles.ToStrings())
}

func TestUser_AnonymizeAndDisable(t *testing.T) {
	u, err := NewUser("mary@mail.com", "hash", "Mary", Roles{RoleCustomer})
	assert.NoError(t, err)

	u.AnonymizeAndDisable()

	assert.False(t, u.Enabled)
	assert.Equal(t, "Anonymous Smith", u.FullName)
	assert.Equal(t, "blank", u.Password)
	assert.Contains(t, u.Username, "@acme.com")
}

func TestNewUser_RejectsInvalidUsername(t *testing.T) {
	_, err := NewUser("not-an-email", "hash", "X", nil)

	assert.Error(t, err)
}
