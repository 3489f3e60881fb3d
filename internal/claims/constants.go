package claims

// Persistence envelope version for the file store. Bump when the on-disk
// structure changes; the loader reads claimed_ids regardless of version, so
// older files keep working after an upgrade.
const FileStoreVersion = 1

// SQL query constants for the postgres store
const (
	// SQLSelectClaimed retrieves every claimed domain id in claim order
	SQLSelectClaimed = `
		SELECT domain_id
		FROM claimed_domains
		ORDER BY claimed_at
	`

	// SQLInsertClaim records a claim; conflicting ids are already claimed
	SQLInsertClaim = `
		INSERT INTO claimed_domains (domain_id)
		VALUES ($1)
		ON CONFLICT (domain_id) DO NOTHING
	`
)

// Log messages
const (
	LogMsgLoadFailed    = "Failed to load claim set, starting empty"
	LogMsgPersistFailed = "Failed to persist claim"
)

// Error message constants
const (
	ErrMsgReadClaimsFailed   = "failed to read claims file: %w"
	ErrMsgParseClaimsFailed  = "failed to parse claims file: %w"
	ErrMsgWriteClaimsFailed  = "failed to write claims file: %w"
	ErrMsgSelectClaimsFailed = "failed to select claimed domains: %w"
	ErrMsgInsertClaimFailed  = "failed to insert claim: %w"
)
