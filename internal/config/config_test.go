package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("TEST_KEY", "value")
	assert.Equal(t, "value", Get("TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("TEST_MISSING_KEY", "fallback"))

	t.Setenv("TEST_EMPTY", "")
	assert.Equal(t, "fallback", Get("TEST_EMPTY", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetInt("TEST_INT", 7))

	t.Setenv("TEST_BAD_INT", "not a number")
	assert.Equal(t, 7, GetInt("TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetInt("TEST_MISSING_INT", 7))
}

func TestGetFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "3.14")
	assert.InDelta(t, 3.14, GetFloat("TEST_FLOAT", 1.0), 0.001)
	assert.InDelta(t, 1.0, GetFloat("TEST_MISSING_FLOAT", 1.0), 0.001)
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, GetBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "no")
	assert.False(t, GetBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, GetBool("TEST_BOOL", true))
}

func TestMustGetPanics(t *testing.T) {
	assert.Panics(t, func() { MustGet("TEST_DEFINITELY_MISSING") })
}
