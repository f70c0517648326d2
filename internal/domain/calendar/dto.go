package calendar

// DayHours is one day's total hours, used by the flat fallback view.
type DayHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// MonthSummary aggregates a month's entries.
type MonthSummary struct {
	TotalHours   float64 `json:"total_hours"`
	WorkingDays  int     `json:"working_days"`
	AverageHours float64 `json:"average_hours"`
	BestDay      string  `json:"best_day,omitempty"`
}

// MonthMatrix is a month's hours reshaped into a Monday-first week grid for
// heatmap rendering. Cells outside the month carry zero hours and an empty
// date label. When the padded range cannot be reshaped into whole weeks the
// grid is omitted and Fallback carries a flat day list instead.
type MonthMatrix struct {
	Matrix     [][]float64 `json:"matrix,omitempty"`
	DateLabels [][]string  `json:"date_labels,omitempty"`
	WeekLabels []string    `json:"week_labels,omitempty"`
	DayLabels  []string    `json:"day_labels,omitempty"`
	Fallback   []DayHours  `json:"fallback,omitempty"`
	Summary    MonthSummary `json:"summary"`
}
