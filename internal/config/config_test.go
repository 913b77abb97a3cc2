package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("NOTRIS_TEST_STR", "custom")
	assert.Equal(t, "custom", getEnv("NOTRIS_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnv("NOTRIS_TEST_UNSET", "fallback"))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("NOTRIS_TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("NOTRIS_TEST_BOOL", false))

	t.Setenv("NOTRIS_TEST_BOOL", "not-a-bool")
	assert.True(t, getEnvAsBool("NOTRIS_TEST_BOOL", true), "unparseable values fall back to the default")

	assert.False(t, getEnvAsBool("NOTRIS_TEST_UNSET", false))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("NOTRIS_TEST_INT", "9090")
	assert.Equal(t, 9090, getEnvAsInt("NOTRIS_TEST_INT", 8080))

	t.Setenv("NOTRIS_TEST_INT", "eighty-eighty")
	assert.Equal(t, 8080, getEnvAsInt("NOTRIS_TEST_INT", 8080))
}
