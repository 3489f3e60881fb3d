package collection

// Error message formats for the collection loader
const (
	ErrMsgReadConfigFileFailed = "failed to read collections config: %w"
	ErrMsgParseConfigFailed    = "failed to parse collections config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoCollectionsDefined = "no collections defined"

	ErrFmtCollectionAtIndexEmpty = "%w: collection at index %d has empty name"
	ErrFmtCollectionBadRarity    = "%w: collection '%s' min_rarity_score must be between 0 and 100"
	ErrFmtCollectionBadTier      = "%w: collection '%s' has unknown tier '%s'"
)
