package config

// Claim persistence backends
const (
	ClaimsBackendFile     = "file"
	ClaimsBackendPostgres = "postgres"
	ClaimsBackendMemory   = "memory"
)

// Default file paths
const (
	DefaultFeedFile   = "configs/listings.json"
	DefaultClaimsFile = "data/claimed.json"

	// ConfigPathCollections is the declarative collection rule config
	ConfigPathCollections = "configs/collections.json"
)

// Default durations
const (
	DefaultFeedCacheTTL = "60s"
)
