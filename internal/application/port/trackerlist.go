package port

import "context"

// TrackerListLoader reads a tracker list document.
type TrackerListLoader interface {
	// LoadFile returns the raw tracker entries of the document at path.
	// Malformed documents fail with tracker.ErrInvalidTrackerList or
	// tracker.ErrNonStringEntry.
	LoadFile(ctx context.Context, path string) ([]string, error)
}

// TrackerListWriter stores a tracker list document.
type TrackerListWriter interface {
	WriteFile(ctx context.Context, path string, domains []string) error
}

// FilterListSource is a named filter list location, either a URL or a local path.
type FilterListSource struct {
	Name     string
	Location string
}

// FetchedFilterList is the raw body of one source.
type FetchedFilterList struct {
	Source FilterListSource
	Body   []byte
}

// FilterListFetcher retrieves filter lists.
type FilterListFetcher interface {
	// FetchAll fetches every source. It fails if any source fails.
	FetchAll(ctx context.Context, sources []FilterListSource) ([]FetchedFilterList, error)
}
