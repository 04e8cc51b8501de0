package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_SETTING", "custom")
	assert.Equal(t, "custom", GetEnvOrDefault("SOME_SETTING", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("UNSET_SETTING", "fallback"))
}

// A missing key disables extraction instead of aborting startup.
func TestGetGeminiAPIKeyOptional(t *testing.T) {
	t.Setenv(geminiAPIKeyEnv, "")
	assert.Empty(t, GetGeminiAPIKey())

	t.Setenv(geminiAPIKeyEnv, "test-key")
	assert.Equal(t, "test-key", GetGeminiAPIKey())
}
