package repository

import "context"

// BlockingStateRepository persists the global blocking flag.
type BlockingStateRepository interface {
	// Get returns the stored flag. A missing value reads as false.
	Get(ctx context.Context) (bool, error)

	// Set stores the flag.
	Set(ctx context.Context, enabled bool) error
}
