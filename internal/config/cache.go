package config

import "time"

// CacheConfig controls the Redis cache in front of the movie catalog.
// Only the catalog is cached; seat layouts and bookings always come
// straight from the backend.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_ENABLED, CACHE_TTL and CACHE_PREFIX.
func LoadCacheConfig() CacheConfig {
	c := CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 60*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "cinetrack"),
	}
	if c.TTL <= 0 {
		c.TTL = time.Minute
	}
	return c
}
