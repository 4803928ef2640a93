//go:build unit

package user_test

import (
	"testing"

	"safestore/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "seller@example.com"},
		{name: "trims whitespace", input: "  seller@example.com  "},
		{name: "missing at sign", input: "sellerexample.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "seller@", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "seller@example.com", email.Value())
		})
	}
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		creds, err := user.NewCredentials("seller@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "seller@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("short password", func(t *testing.T) {
		_, err := user.NewCredentials("seller@example.com", "1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestRole(t *testing.T) {
	for _, role := range user.AllRoles() {
		parsed, err := user.NewRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
