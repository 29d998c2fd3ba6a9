package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := &User{Username: "admin"}

	require.NoError(t, user.SetPassword("Secret123!"))

	assert.NotEqual(t, "Secret123!", user.PasswordHash)
	assert.True(t, user.CheckPassword("Secret123!"))
	assert.False(t, user.CheckPassword("secret123!"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	editor := &User{Role: RoleEditor}

	assert.True(t, admin.IsAdmin())
	assert.False(t, editor.IsAdmin())
}
