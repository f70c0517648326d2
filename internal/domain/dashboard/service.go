package dashboard

import "context"

// Service defines the manager and admin dashboard operations.
type Service interface {
	// GetTeamOverview computes per-member monthly metrics concurrently and
	// rolls them up into team totals.
	GetTeamOverview(ctx context.Context, teamID string) (*TeamOverviewResponse, error)

	// GetSystemStats returns installation-wide counts.
	GetSystemStats(ctx context.Context) (*SystemStatsResponse, error)
}
