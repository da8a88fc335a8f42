package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"empleo-search/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", config.GetEnvString("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", config.GetEnvString("TEST_STR_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, config.GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, config.GetEnvInt("TEST_INT_BAD", 7))

	assert.Equal(t, 7, config.GetEnvInt("TEST_INT_MISSING", 7))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, config.GetEnvFloat("TEST_FLOAT", 1.0))

	t.Setenv("TEST_FLOAT_BAD", "x")
	assert.Equal(t, 1.0, config.GetEnvFloat("TEST_FLOAT_BAD", 1.0))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, config.GetEnvDuration("TEST_DUR", time.Minute))

	t.Setenv("TEST_DUR_BAD", "ninety")
	assert.Equal(t, time.Minute, config.GetEnvDuration("TEST_DUR_BAD", time.Minute))
}
