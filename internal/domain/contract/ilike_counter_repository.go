package contract

import "context"

// ILikeCounterRepository defines persistence for the single like counter.
// Implementations must serialize increments so that concurrent callers never
// lose an update.
type ILikeCounterRepository interface {
	// EnsureInitialized creates the counter at zero if no state exists yet.
	EnsureInitialized(ctx context.Context) error
	GetTotalLikes(ctx context.Context) (int64, error)
	// IncrementTotalLikes adds one and returns the new total.
	IncrementTotalLikes(ctx context.Context) (int64, error)
}
