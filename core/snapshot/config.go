package snapshot

import "time"

// Config holds configuration for tenant snapshots.
type Config struct {
	// Prefix is the object-storage folder holding archived snapshots.
	Prefix string `mapstructure:"prefix" default:"snapshots"`
	// CacheTTLSeconds is how long a loaded snapshot is served from memory. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// Archive enables writing successful loads to object storage.
	Archive bool `mapstructure:"archive" default:"true"`
}

// CacheTTL returns the cache lifetime as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// ObjectName returns the archive object key for a tenant.
func (c Config) ObjectName(tenantID string) string {
	prefix := c.Prefix
	if prefix == "" {
		prefix = "snapshots"
	}
	return prefix + "/" + tenantID + ".json"
}
