package calendar

import "context"

// Service builds calendar-shaped aggregations of a user's entries.
type Service interface {
	// BuildMonthMatrix returns the dense week-by-day hours grid for the
	// month containing anchorDate (YYYY-MM-DD or YYYY-MM).
	BuildMonthMatrix(ctx context.Context, userID string, anchorDate string) (MonthMatrix, error)
}
