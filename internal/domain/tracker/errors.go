package tracker

import "errors"

// Tracker list errors.
var (
	// ErrInvalidTrackerList is returned when the document has no usable tracker array.
	ErrInvalidTrackerList = errors.New("invalid tracker list")

	// ErrNonStringEntry is returned when the tracker array holds something other than strings.
	ErrNonStringEntry = errors.New("tracker list entry is not a string")

	// ErrMalformedFilterList is returned when a filter list cannot be read line by line.
	ErrMalformedFilterList = errors.New("malformed filter list")
)
