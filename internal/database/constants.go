package database

import "time"

// Claim-store pool defaults
const (
	// DefaultMinConnections keeps a couple of warm connections so the first
	// claim after an idle stretch doesn't pay a dial
	DefaultMinConnections = 2

	// DefaultMaxConnections bounds the pool; the service is read-heavy with a
	// single small table, so it stays modest
	DefaultMaxConnections = 10

	// DefaultMaxConnIdleTime recycles idle connections before typical
	// load-balancer idle timeouts cut them
	DefaultMaxConnIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime forces periodic reconnects so server-side
	// credential rotation takes effect without a restart
	DefaultMaxConnLifetime = 30 * time.Minute
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

// Log Messages
const (
	LogMsgDatabaseConnected = "Claim store database connected"
	LogMsgMigrationsApplied = "Database migrations applied"
)
