package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("tetris4ever")
	require.NoError(t, err)
	assert.NotEqual(t, "tetris4ever", hash)

	assert.True(t, CheckPassword("tetris4ever", hash))
	assert.False(t, CheckPassword("tetris4never", hash))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("stack_master9"))

	assert.Error(t, ValidateUsername("ab"), "too short")
	assert.Error(t, ValidateUsername("has spaces"))
	assert.Error(t, ValidateUsername("bad-chars!"))

	assert.Error(t, ValidateUsername("guest"), "collides with guest mode")
	assert.Error(t, ValidateUsername("Guest"), "reservation is case-insensitive")
	assert.Error(t, ValidateUsername("notris"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("player@example.com"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough1"))

	assert.Error(t, ValidatePassword("short1"), "too short")
	assert.Error(t, ValidatePassword("allletters"), "needs a number")
	assert.Error(t, ValidatePassword("123456789"), "needs a letter")
}
