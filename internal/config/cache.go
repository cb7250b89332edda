package config

import "time"

// CacheConfig defines settings for the availability cache.  When
// Enabled is false or no Redis client is configured, availability is
// computed from the database on every request.  TTL bounds staleness
// for the rare case where an invalidation is lost; normal invalidation
// happens explicitly whenever a reservation is created or cancelled.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "avail"),
	}
}
