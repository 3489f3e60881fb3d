package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgDomainNotFound = "domain not found"

	// Collection errors
	ErrMsgCollectionNotFound = "collection not found"

	// Rotation errors
	ErrMsgUnknownRotationGroup = "unknown rotation group"

	// Feed errors
	ErrMsgFeedUnavailable = "listing feed unavailable"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrDomainNotFound = errors.New(ErrMsgDomainNotFound)

	// Collection errors
	ErrCollectionNotFound = errors.New(ErrMsgCollectionNotFound)

	// Rotation errors
	ErrUnknownRotationGroup = errors.New(ErrMsgUnknownRotationGroup)

	// Feed errors
	ErrFeedUnavailable = errors.New(ErrMsgFeedUnavailable)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
