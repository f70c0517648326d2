package entry

import "context"

// Service defines business logic for daily entries.
type Service interface {
	// SaveEntry validates and upserts a daily entry, computing TotalHours
	// from the activity map.
	SaveEntry(ctx context.Context, req SaveEntryRequest) (EntryResponse, error)

	// GetMyEntries returns a user's entries, newest first, optionally
	// bounded by inclusive ISO date strings.
	GetMyEntries(ctx context.Context, userID string, startDate, endDate *string) ([]EntryResponse, error)
}
