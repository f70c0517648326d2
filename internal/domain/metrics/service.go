package metrics

import (
	"context"

	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
)

// Service is the productivity metrics engine.
type Service interface {
	// ComputeMetrics derives a user's metrics over the window selected by
	// period. An empty window yields a zero-valued Metrics with
	// ExpectedDailyHours still set from the location's work profile.
	ComputeMetrics(ctx context.Context, userID string, period Period, location team.LocationType) (Metrics, error)

	// GenerateInsights produces between one and five insight messages from
	// the user's current-month metrics, in a fixed order: productivity tier,
	// hours, top activity, mood, energy.
	GenerateInsights(ctx context.Context, userID string, location team.LocationType) ([]string, error)

	// GoalProgressFor reports current-month attainment against the user's
	// goal snapshot.
	GoalProgressFor(ctx context.Context, userID string, location team.LocationType, goals map[string]float64) ([]GoalProgress, error)
}
