package server_test

import (
	"testing"
	"time"

	"jalsetu/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidTimezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     bool
	}{
		{"Kolkata", "Asia/Kolkata", true},
		{"UTC", "UTC", true},
		{"Invalid", "Mars/Olympus", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Timezone: tt.timezone}
			assert.Equal(t, tt.want, c.IsValidTimezone())
		})
	}
}

func TestConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, server.Config{Timezone: "Mars/Olympus"}.Location())
	assert.Equal(t, time.UTC, server.Config{}.Location())
	assert.Equal(t, "Asia/Kolkata", server.Config{Timezone: "Asia/Kolkata"}.Location().String())
}
