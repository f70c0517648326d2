package dashboard

import "context"

// StatsRepository defines the counting queries behind the admin panel.
type StatsRepository interface {
	// CountUsers returns the total number of user records.
	CountUsers(ctx context.Context) (int64, error)

	// CountEntries returns the total number of daily entries.
	CountEntries(ctx context.Context) (int64, error)

	// CountActiveOn returns the number of distinct users with an entry on
	// the given ISO date.
	CountActiveOn(ctx context.Context, date string) (int64, error)
}
