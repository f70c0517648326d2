package dashboard

import "github.com/opspulse/opspulse-backend-go/internal/domain/metrics"

// ========== TEAM OVERVIEW (manager) ==========

// MemberPerformance is one team member's monthly rollup.
type MemberPerformance struct {
	UserID            string  `json:"user_id"`
	Name              string  `json:"name"`
	LocationType      string  `json:"location_type"`
	ProductivityScore float64 `json:"productivity_score"`
	TotalHours        float64 `json:"total_hours"`
	AvgDailyHours     float64 `json:"avg_daily_hours"`
	WorkingDays       int     `json:"working_days"`
	Status            string  `json:"status"`

	Metrics metrics.Metrics `json:"-"`
}

// TeamOverviewResponse is the manager dashboard payload.
type TeamOverviewResponse struct {
	Team              string              `json:"team"`
	TotalMembers      int                 `json:"total_members"`
	ActiveMembers     int                 `json:"active_members"`
	TeamTotalHours    float64             `json:"team_total_hours"`
	AvgProductivity   float64             `json:"avg_productivity"`
	ActivityBreakdown map[string]float64  `json:"activity_breakdown"`
	Members           []MemberPerformance `json:"members"`
}

// ========== SYSTEM STATS (admin) ==========

// SystemStatsResponse summarizes the whole installation.
type SystemStatsResponse struct {
	Date         string `json:"date"`
	TotalUsers   int64  `json:"total_users"`
	TotalEntries int64  `json:"total_entries"`
	ActiveToday  int64  `json:"active_today"`
}
