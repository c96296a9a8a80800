package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Timezone is the IANA zone used to read bare dates such as "?now=2025-10-01".
	Timezone string `mapstructure:"timezone" default:"Asia/Kolkata"`
}

// Location resolves the configured timezone, falling back to UTC when it is invalid.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsValidTimezone checks if the configured timezone can be loaded.
func (c Config) IsValidTimezone() bool {
	if c.Timezone == "" {
		return false
	}
	_, err := time.LoadLocation(c.Timezone)
	return err == nil
}
