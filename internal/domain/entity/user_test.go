package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
)

func TestNewUser(t *testing.T) {
	user, err := entity.NewUser(" Ada ", "Lovelace", " ada ", " Ada@Example.COM ", "hash")
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, user.HasPassword())
}

func TestNewUserRequiresCredential(t *testing.T) {
	_, err := entity.NewUser("Ada", "Lovelace", "ada", "ada@example.com", "")
	assert.ErrorIs(t, err, entity.ErrNoCredential)
}

func TestNewGoogleUser(t *testing.T) {
	user, err := entity.NewGoogleUser("g-123", "Grace@Example.com", "Grace Brewster Hopper")
	require.NoError(t, err)

	assert.Equal(t, "g-123", user.GoogleID)
	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "Brewster Hopper", user.LastName)
	assert.Equal(t, "grace@example.com", user.Email)
	assert.False(t, user.HasPassword())
	assert.True(t, user.CanAuthenticate())
	assert.Equal(t, "Grace Brewster Hopper", user.DisplayName())

	_, err = entity.NewGoogleUser("", "x@example.com", "X")
	assert.ErrorIs(t, err, entity.ErrNoCredential)
}
