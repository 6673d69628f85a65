package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("BAYMS_TEST_UNSET", "fallback"))

	t.Setenv("BAYMS_TEST_SET", "value")
	assert.Equal(t, "value", GetEnv("BAYMS_TEST_SET", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	assert.Equal(t, 42, GetEnvAsInt("BAYMS_TEST_UNSET", 42))

	t.Setenv("BAYMS_TEST_PORT", "8080")
	assert.Equal(t, 8080, GetEnvAsInt("BAYMS_TEST_PORT", 42))

	t.Setenv("BAYMS_TEST_PORT", "not-a-number")
	assert.Equal(t, 42, GetEnvAsInt("BAYMS_TEST_PORT", 42))
}
