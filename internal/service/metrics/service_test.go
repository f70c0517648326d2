package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/domain/metrics"
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
)

type fakeEntryRepo struct {
	entries []entry.DailyEntry
}

func (f *fakeEntryRepo) Upsert(ctx context.Context, e entry.DailyEntry) (entry.DailyEntry, error) {
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeEntryRepo) ListByUser(ctx context.Context, userID string, startDate, endDate *string) ([]entry.DailyEntry, error) {
	var out []entry.DailyEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if startDate != nil && e.Date < *startDate {
			continue
		}
		if endDate != nil && e.Date > *endDate {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// fixedClock pins today to 2025-06-15 so month windows cover June 1-15.
func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

func newTestService(repo entry.Repository) *MetricsServiceImpl {
	return &MetricsServiceImpl{entryRepo: repo, now: fixedClock}
}

func dayEntry(userID, date string, hours map[string]float64, mood, energy int) entry.DailyEntry {
	return entry.DailyEntry{
		UserID:        userID,
		Date:          date,
		ActivityHours: hours,
		TotalHours:    entry.SumActivityHours(hours),
		MoodScore:     mood,
		EnergyLevel:   energy,
	}
}

func TestMetricsService_ComputeMetrics_EmptyWindow(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeEntryRepo{})

	m, err := svc.ComputeMetrics(context.Background(), "u1", metrics.PeriodMonth, team.LocationOffshore)

	require.NoError(t, err)
	assert.Zero(t, m.TotalHours)
	assert.Zero(t, m.WorkingDays)
	assert.Zero(t, m.ProductivityScore)
	assert.NotNil(t, m.ActivityBreakdown)
	assert.Empty(t, m.ActivityBreakdown)
	assert.Equal(t, 8.8, m.ExpectedDailyHours)
}

func TestMetricsService_ComputeMetrics_WeekWindow(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	for _, date := range []string{"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13"} {
		repo.entries = append(repo.entries, dayEntry("u1", date, map[string]float64{"database_support": 8}, 7, 6))
	}
	// Outside the trailing 7-day window, must be excluded.
	repo.entries = append(repo.entries, dayEntry("u1", "2025-06-01", map[string]float64{"database_support": 8}, 7, 6))
	// Another user, must be excluded.
	repo.entries = append(repo.entries, dayEntry("u2", "2025-06-10", map[string]float64{"database_support": 8}, 7, 6))

	svc := newTestService(repo)
	m, err := svc.ComputeMetrics(context.Background(), "u1", metrics.PeriodWeek, team.LocationOnshore)

	require.NoError(t, err)
	assert.Equal(t, 40.0, m.TotalHours)
	assert.Equal(t, 5, m.WorkingDays)
	assert.Equal(t, 8.0, m.AvgDailyHours)
	assert.InDelta(t, 71.43, m.ConsistencyScore, 0.01)
	assert.InDelta(t, 85.71, m.ProductivityScore, 0.01)
	assert.Equal(t, 7.0, m.MoodAvg)
	assert.Equal(t, 6.0, m.EnergyAvg)
	assert.Equal(t, 40.0, m.ActivityBreakdown["database_support"])
}

func TestMetricsService_ComputeMetrics_OvertimeDoesNotInflateScore(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries, dayEntry("u1", "2025-06-10", map[string]float64{"migration_work": 12}, 7, 7))

	svc := newTestService(repo)
	m, err := svc.ComputeMetrics(context.Background(), "u1", metrics.PeriodMonth, team.LocationOnshore)

	require.NoError(t, err)
	// 12h against an 8h target is capped at 100 on the hours component,
	// so the blended score is (1/14*100 + 100) / 2.
	assert.Equal(t, 12.0, m.AvgDailyHours)
	assert.InDelta(t, 7.14, m.ConsistencyScore, 0.01)
	assert.InDelta(t, 53.57, m.ProductivityScore, 0.01)
}

func TestMetricsService_ComputeMetrics_ZeroHourDayIsNotWorking(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries, dayEntry("u1", "2025-06-09", map[string]float64{"oncall": 8}, 8, 8))
	repo.entries = append(repo.entries, dayEntry("u1", "2025-06-10", map[string]float64{}, 2, 3))

	svc := newTestService(repo)
	m, err := svc.ComputeMetrics(context.Background(), "u1", metrics.PeriodMonth, team.LocationOnshore)

	require.NoError(t, err)
	assert.Equal(t, 1, m.WorkingDays)
	assert.Equal(t, 8.0, m.AvgDailyHours)
	// Mood and energy average over all entries, including zero-hour days.
	assert.Equal(t, 5.0, m.MoodAvg)
	assert.Equal(t, 5.5, m.EnergyAvg)
}

func TestMetricsService_GenerateInsights_OrderAndContent(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	for day := 1; day <= 14; day++ {
		date := time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		repo.entries = append(repo.entries, dayEntry("u1", date,
			map[string]float64{"database_support": 5, "migration_work": 3}, 8, 8))
	}

	svc := newTestService(repo)
	insights, err := svc.GenerateInsights(context.Background(), "u1", team.LocationOnshore)

	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Contains(t, insights[0], "Excellent!")
	assert.Contains(t, insights[1], "meeting your onshore daily target of 8.0h")
	assert.Contains(t, insights[2], "Database Support")
}

func TestMetricsService_GenerateInsights_SilentHoursBand(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	// 7.25h average: under target but inside the silent band between
	// 0.5h and 1h below, so no hours message at all.
	repo.entries = append(repo.entries, dayEntry("u1", "2025-06-10", map[string]float64{"oncall": 7.25}, 6, 6))

	svc := newTestService(repo)
	insights, err := svc.GenerateInsights(context.Background(), "u1", team.LocationOnshore)

	require.NoError(t, err)
	require.Len(t, insights, 2)
	for _, msg := range insights {
		assert.NotContains(t, msg, "target")
	}
	assert.Contains(t, insights[1], "Oncall")
}

func TestMetricsService_GenerateInsights_LowMoodAndEnergy(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries, dayEntry("u1", "2025-06-10", map[string]float64{"oncall": 12}, 3, 2))

	svc := newTestService(repo)
	insights, err := svc.GenerateInsights(context.Background(), "u1", team.LocationOnshore)

	require.NoError(t, err)
	require.Len(t, insights, 5)
	assert.Contains(t, insights[1], "High work volume")
	assert.Contains(t, insights[3], "Low mood")
	assert.Contains(t, insights[4], "Low energy")
}

func TestMetricsService_TopActivity_TieBreaksLexicographically(t *testing.T) {
	t.Parallel()
	top, ok := topActivity(map[string]float64{"migration_work": 4, "database_support": 4})
	require.True(t, ok)
	assert.Equal(t, "database_support", top)

	_, ok = topActivity(map[string]float64{})
	assert.False(t, ok)
}

func TestMetricsService_GoalProgressFor(t *testing.T) {
	t.Parallel()
	repo := &fakeEntryRepo{}
	for _, date := range []string{"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13"} {
		repo.entries = append(repo.entries, dayEntry("u1", date, map[string]float64{"oncall": 8}, 7, 7))
	}

	svc := newTestService(repo)
	goals := map[string]float64{"daily_hours": 8, "weekly_hours": 40}
	progress, err := svc.GoalProgressFor(context.Background(), "u1", team.LocationOnshore, goals)

	require.NoError(t, err)
	require.Len(t, progress, 3)

	assert.Equal(t, "daily_hours", progress[0].Goal)
	assert.Equal(t, 8.0, progress[0].Current)
	assert.Equal(t, 100.0, progress[0].Progress)

	assert.Equal(t, "weekly_hours", progress[1].Goal)
	assert.InDelta(t, 40.0*7/30, progress[1].Current, 0.001)

	// No explicit productivity goal in the snapshot falls back to 85.
	assert.Equal(t, "monthly_productivity", progress[2].Goal)
	assert.Equal(t, 85.0, progress[2].Target)
}

func TestMetricsService_ActivityLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Sop Creation", activityLabel("sop_creation"))
	assert.Equal(t, "Oncall", activityLabel("oncall"))
}
