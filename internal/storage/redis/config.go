package redis

import "time"

// Config holds Redis storage configuration
type Config struct {
	// URL is the Redis connection URL (redis://...)
	URL string

	// PoolSize is the connection pool size
	PoolSize int

	// MinIdleConns is the minimum number of idle connections
	MinIdleConns int

	// ProviderUserTTL is the expiry applied to provider user records.
	// Zero means no expiry.
	ProviderUserTTL time.Duration

	// CatalogTTL is the expiry applied to vendor and game catalog entries,
	// which are refreshed from config on startup.
	CatalogTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis storage
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		CatalogTTL:   24 * time.Hour,
	}
}
