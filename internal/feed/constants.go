package feed

// Error message formats
const (
	ErrMsgReadFeedFileFailed = "failed to read listings file: %w"
	ErrMsgParseFeedFailed    = "failed to parse listings payload: %w"
	ErrMsgBuildRequestFailed = "failed to build feed request: %w"
	ErrMsgFetchFeedFailed    = "failed to fetch listings: %w"
	ErrFmtFeedBadStatus      = "feed returned status %d"
)

// Log messages
const (
	LogMsgSnapshotRefreshed = "Listing snapshot refreshed"
	LogMsgReloadRequested   = "Listing snapshot reload requested"
)

// Cache settings
const (
	snapshotCacheKey  = "snapshot"
	snapshotCacheSize = 1
)
