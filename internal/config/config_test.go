package config_test

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-worldclock/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"TimeLayout", config.TimeLayout},
		{"DateLayout", config.DateLayout},
		{"PlaceholderTime", config.PlaceholderTime},
		{"PlaceholderDate", config.PlaceholderDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaultTimezones_Shape checks the built-in grid configuration.
func TestDefaultTimezones_Shape(t *testing.T) {
	require.Len(t, config.DefaultTimezones, 9)
	assert.Equal(t, "America/New_York", config.DefaultTimezones[0], "Declaration order must be kept")
	assert.Equal(t, "Pacific/Auckland", config.DefaultTimezones[8])

	seen := make(map[string]bool)
	for _, id := range config.DefaultTimezones {
		assert.False(t, seen[id], "Duplicate timezone %s", id)
		seen[id] = true
		assert.True(t, strings.Contains(id, config.ZoneSeparator), "%s should be Region/City", id)
		_, err := time.LoadLocation(id)
		assert.NoError(t, err, "%s must be resolvable", id)
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, time.Second, config.TickInterval, "Clocks refresh once per second")
	assert.Greater(t, config.GridColumns, 0)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)

	// The layouts must round-trip the reference instant.
	ref := time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "09:05:07", ref.Format(config.TimeLayout))
	assert.Equal(t, "Mon, Jan 01 2024", ref.Format(config.DateLayout))
}
