package entities

import (
	"testing"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(NewUserProps{
		Phone:     "+5511912345678",
		Name:      "Maria Silva",
		Document:  "11144477735",
		Email:     "maria@example.com",
		CreatedBy: "admin",
	})
	require.NoError(t, err)
	return u
}

func TestNewUser_Defaults(t *testing.T) {
	u := newTestUser(t)
	assert.Equal(t, UserStatusActive, u.Status)
	assert.Equal(t, "+5511912345678", u.Phone.E164)
	assert.Equal(t, valueobjects.DocumentTypeCPF, u.Document.Type)
	assert.Equal(t, "USER#+5511912345678", u.PK())
	assert.Equal(t, "PROFILE", u.SK())
}

func TestNewUser_Validation(t *testing.T) {
	t.Run("short name", func(t *testing.T) {
		_, err := NewUser(NewUserProps{Phone: "+5511912345678", Name: "M"})
		require.Error(t, err)
		assert.True(t, pkg.IsValidation(err))
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := NewUser(NewUserProps{Phone: "+5511912345678", Name: "Maria", Email: "not-an-email"})
		require.Error(t, err)
	})

	t.Run("bad document", func(t *testing.T) {
		_, err := NewUser(NewUserProps{Phone: "+5511912345678", Name: "Maria", Document: "11111111111"})
		require.Error(t, err)
	})

	t.Run("document optional", func(t *testing.T) {
		u, err := NewUser(NewUserProps{Phone: "+5511912345678", Name: "Maria"})
		require.NoError(t, err)
		assert.True(t, u.Document.IsZero())
	})
}

func TestUser_GuardedTransitions(t *testing.T) {
	u := newTestUser(t)

	err := u.Activate("admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	require.NoError(t, u.Suspend("admin"))
	assert.Equal(t, UserStatusSuspended, u.Status)
	assert.Equal(t, 2, u.Metadata.Version)

	require.Error(t, u.Suspend("admin"))

	require.NoError(t, u.Activate("admin"))
	require.NoError(t, u.Deactivate("admin"))
	require.Error(t, u.Deactivate("admin"))
	assert.Equal(t, 4, u.Metadata.Version)
}

func TestUser_UpdateProfile(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.UpdateProfile("Maria S. Santos", "", "maria.santos@example.com", "admin"))
	assert.Equal(t, "Maria S. Santos", u.Name)
	assert.Equal(t, "maria.santos@example.com", u.Email)
	assert.Equal(t, 2, u.Metadata.Version)

	// no change, no version bump
	require.NoError(t, u.UpdateProfile("", "", "", "admin"))
	assert.Equal(t, 2, u.Metadata.Version)

	require.Error(t, u.UpdateProfile("X", "", "", "admin"))
	require.Error(t, u.UpdateProfile("", "123", "", "admin"))
}
