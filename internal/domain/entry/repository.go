package entry

import "context"

// Repository is the EntryStore contract. Both persistence backends implement
// it; the core never knows which one is behind the interface.
type Repository interface {
	// Upsert saves or replaces the entry keyed by (UserID, Date).
	Upsert(ctx context.Context, e DailyEntry) (DailyEntry, error)

	// ListByUser returns a user's entries, optionally bounded by inclusive
	// ISO date strings. Result ordering is not guaranteed; callers that need
	// an order must sort.
	ListByUser(ctx context.Context, userID string, startDate, endDate *string) ([]DailyEntry, error)
}
