package metrics

// Period selects the date window a metrics computation covers, anchored at
// today. Unknown values fall back to a trailing 30-day window.
type Period string

const (
	PeriodWeek    Period = "week"    // today - 7 days .. today
	PeriodMonth   Period = "month"   // first of current month .. today
	PeriodQuarter Period = "quarter" // today - 90 days .. today
)

// Metrics is a derived value object, computed fresh on every call and never
// persisted or cached.
type Metrics struct {
	TotalHours         float64            `json:"total_hours"`
	AvgDailyHours      float64            `json:"avg_daily_hours"`
	WorkingDays        int                `json:"working_days"`
	ProductivityScore  float64            `json:"productivity_score"`
	ConsistencyScore   float64            `json:"consistency_score"`
	MoodAvg            float64            `json:"mood_avg"`
	EnergyAvg          float64            `json:"energy_avg"`
	ActivityBreakdown  map[string]float64 `json:"activity_breakdown"`
	ExpectedDailyHours float64            `json:"expected_daily_hours"`
}

// GoalProgress reports attainment against one goal target, capped at 100%.
type GoalProgress struct {
	Goal     string  `json:"goal"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Progress float64 `json:"progress"`
}
