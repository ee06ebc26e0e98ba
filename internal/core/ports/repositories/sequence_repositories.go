package repositories

import "context"

// SequenceRepository hands out strictly increasing counter values per category.
// Implementations must increment atomically at the store level; the caller holds
// no lock. The first allocation for a new category returns 1.
type SequenceRepository interface {
	NextValue(ctx context.Context, category string) (int64, error)
}
