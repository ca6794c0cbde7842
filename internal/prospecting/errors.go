package prospecting

import "errors"

var (
	// ErrMissingIndustry is returned when a search has no industry keywords.
	ErrMissingIndustry = errors.New("prospecting: industry keywords required")
	// ErrMissingRegion is returned when a search has no target region.
	ErrMissingRegion = errors.New("prospecting: target region required")
	// ErrContactNotFound is returned when a contact ID is unknown.
	ErrContactNotFound = errors.New("prospecting: contact not found")
)
