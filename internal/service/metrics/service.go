package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/domain/metrics"
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
)

const dateLayout = "2006-01-02"

type MetricsServiceImpl struct {
	entryRepo entry.Repository

	// injectable clock, fixed in tests
	now func() time.Time
}

func NewMetricsService(entryRepo entry.Repository) metrics.Service {
	return &MetricsServiceImpl{
		entryRepo: entryRepo,
		now:       time.Now,
	}
}

func (s *MetricsServiceImpl) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// window resolves a period to its [start, end] date window, anchored at today.
func (s *MetricsServiceImpl) window(period metrics.Period) (start, end time.Time) {
	end = s.today()
	switch period {
	case metrics.PeriodWeek:
		start = end.AddDate(0, 0, -7)
	case metrics.PeriodMonth:
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	case metrics.PeriodQuarter:
		start = end.AddDate(0, 0, -90)
	default:
		start = end.AddDate(0, 0, -30)
	}
	return start, end
}

// ComputeMetrics implements metrics.Service.
func (s *MetricsServiceImpl) ComputeMetrics(ctx context.Context, userID string, period metrics.Period, location team.LocationType) (metrics.Metrics, error) {
	start, end := s.window(period)
	startStr := start.Format(dateLayout)
	endStr := end.Format(dateLayout)

	entries, err := s.entryRepo.ListByUser(ctx, userID, &startStr, &endStr)
	if err != nil {
		return metrics.Metrics{}, fmt.Errorf("list entries for metrics: %w", err)
	}

	expectedDaily := team.ExpectedDailyHours(location)

	if len(entries) == 0 {
		return metrics.Metrics{
			ActivityBreakdown:  map[string]float64{},
			ExpectedDailyHours: expectedDaily,
		}, nil
	}

	var (
		totalHours  float64
		workingDays int
		moodSum     int
		energySum   int
	)
	breakdown := make(map[string]float64)

	for _, e := range entries {
		totalHours += e.TotalHours
		if e.TotalHours > 0 {
			workingDays++
		}
		moodSum += e.MoodScore
		energySum += e.EnergyLevel
		for activity, hours := range e.ActivityHours {
			breakdown[activity] += hours
		}
	}

	avgDailyHours := totalHours / float64(max(workingDays, 1))

	// Score: consistency of logging blended with hours-target attainment.
	// The hours component is capped so overtime cannot inflate the score.
	expectedDays := int(end.Sub(start).Hours() / 24)
	consistencyScore := float64(workingDays) / float64(max(expectedDays, 1)) * 100
	hoursScore := min(avgDailyHours/expectedDaily*100, 100)
	productivityScore := (consistencyScore + hoursScore) / 2

	return metrics.Metrics{
		TotalHours:         totalHours,
		AvgDailyHours:      avgDailyHours,
		WorkingDays:        workingDays,
		ProductivityScore:  productivityScore,
		ConsistencyScore:   consistencyScore,
		MoodAvg:            float64(moodSum) / float64(len(entries)),
		EnergyAvg:          float64(energySum) / float64(len(entries)),
		ActivityBreakdown:  breakdown,
		ExpectedDailyHours: expectedDaily,
	}, nil
}

// GenerateInsights implements metrics.Service. Messages are produced in a
// fixed order: productivity tier (always), hours, top activity, mood, energy.
func (s *MetricsServiceImpl) GenerateInsights(ctx context.Context, userID string, location team.LocationType) ([]string, error) {
	m, err := s.ComputeMetrics(ctx, userID, metrics.PeriodMonth, location)
	if err != nil {
		return nil, err
	}

	expected := m.ExpectedDailyHours
	locationLabel := string(team.ParseLocationType(string(location)))

	var insights []string

	switch {
	case m.ProductivityScore >= 90:
		insights = append(insights, "Excellent! You're maintaining outstanding productivity levels.")
	case m.ProductivityScore >= 75:
		insights = append(insights, "Good productivity. Consider small optimizations for even better results.")
	case m.ProductivityScore >= 60:
		insights = append(insights, "Room for improvement. Focus on consistency and goal achievement.")
	default:
		insights = append(insights, "Productivity needs attention. Consider reviewing your workflow and goals.")
	}

	// The bands between these thresholds are intentionally silent; the
	// original tracker behaves the same way, so no message is emitted for
	// an average between 0.5h and 1h under target, or up to 2h over.
	switch {
	case m.AvgDailyHours < expected-1:
		insights = append(insights, fmt.Sprintf(
			"Consider increasing daily working hours to meet the %s target of %.1fh.", locationLabel, expected))
	case m.AvgDailyHours > expected+2:
		insights = append(insights, fmt.Sprintf(
			"High work volume detected (%.1fh vs %.1fh target). Ensure work-life balance.", m.AvgDailyHours, expected))
	case abs(m.AvgDailyHours-expected) <= 0.5:
		insights = append(insights, fmt.Sprintf(
			"Great! You're meeting your %s daily target of %.1fh.", locationLabel, expected))
	}

	if top, ok := topActivity(m.ActivityBreakdown); ok {
		insights = append(insights, fmt.Sprintf("Your primary focus is on %s.", activityLabel(top)))
	}

	if m.MoodAvg < 6 {
		insights = append(insights, "Low mood scores detected. Consider discussing workload or challenges with your manager.")
	}
	if m.EnergyAvg < 6 {
		insights = append(insights, "Low energy levels. Ensure adequate rest and consider workload optimization.")
	}

	return insights, nil
}

// GoalProgressFor implements metrics.Service. The daily and weekly hour
// goals come from the user's goal snapshot; the productivity goal is the
// documented "monthly_productivity" key, defaulting to 85 when the snapshot
// carries a different team KPI instead.
func (s *MetricsServiceImpl) GoalProgressFor(ctx context.Context, userID string, location team.LocationType, goals map[string]float64) ([]metrics.GoalProgress, error) {
	m, err := s.ComputeMetrics(ctx, userID, metrics.PeriodMonth, location)
	if err != nil {
		return nil, err
	}

	var progress []metrics.GoalProgress

	if target, ok := goals["daily_hours"]; ok {
		progress = append(progress, goalProgress("daily_hours", target, m.AvgDailyHours))
	}
	if target, ok := goals["weekly_hours"]; ok {
		// Approximate weekly pace from the month-to-date total.
		current := m.TotalHours * 7 / 30
		progress = append(progress, goalProgress("weekly_hours", target, current))
	}

	productivityTarget := 85.0
	if target, ok := goals["monthly_productivity"]; ok {
		productivityTarget = target
	}
	progress = append(progress, goalProgress("monthly_productivity", productivityTarget, m.ProductivityScore))

	return progress, nil
}

func goalProgress(name string, target, current float64) metrics.GoalProgress {
	var pct float64
	if target > 0 {
		pct = min(current/target*100, 100)
	}
	return metrics.GoalProgress{
		Goal:     name,
		Target:   target,
		Current:  current,
		Progress: pct,
	}
}

// topActivity returns the activity with the largest accumulated hours. Ties
// resolve to the lexicographically smallest activity id so the result does
// not depend on map iteration order.
func topActivity(breakdown map[string]float64) (string, bool) {
	if len(breakdown) == 0 {
		return "", false
	}
	ids := make([]string, 0, len(breakdown))
	for id := range breakdown {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	top := ids[0]
	for _, id := range ids[1:] {
		if breakdown[id] > breakdown[top] {
			top = id
		}
	}
	return top, true
}

// activityLabel turns an activity id into display form: "sop_creation" ->
// "Sop Creation".
func activityLabel(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
