package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/calendar"
	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
)

const dateLayout = "2006-01-02"

var dayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type CalendarServiceImpl struct {
	entryRepo entry.Repository

	// injectable clock, fixed in tests
	now func() time.Time
}

func NewCalendarService(entryRepo entry.Repository) calendar.Service {
	return &CalendarServiceImpl{
		entryRepo: entryRepo,
		now:       time.Now,
	}
}

// parseAnchor accepts YYYY-MM-DD or YYYY-MM; empty means the current month.
func (s *CalendarServiceImpl) parseAnchor(anchor string) (time.Time, error) {
	if anchor == "" {
		t := s.now()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if t, err := time.Parse(dateLayout, anchor); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01", anchor); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", entry.ErrInvalidDate, anchor)
}

// BuildMonthMatrix implements calendar.Service.
func (s *CalendarServiceImpl) BuildMonthMatrix(ctx context.Context, userID string, anchorDate string) (calendar.MonthMatrix, error) {
	anchor, err := s.parseAnchor(anchorDate)
	if err != nil {
		return calendar.MonthMatrix{}, err
	}

	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)

	startStr := monthStart.Format(dateLayout)
	endStr := monthEnd.Format(dateLayout)

	entries, err := s.entryRepo.ListByUser(ctx, userID, &startStr, &endStr)
	if err != nil {
		return calendar.MonthMatrix{}, fmt.Errorf("list entries for calendar: %w", err)
	}

	hoursByDate := make(map[string]float64, len(entries))
	for _, e := range entries {
		hoursByDate[e.Date] = e.TotalHours
	}

	result := calendar.MonthMatrix{
		Summary: monthSummary(entries),
	}

	// Pad outward to whole weeks: back to the Monday on/before the first of
	// the month, forward to the Sunday on/after the last day.
	padStart := monthStart.AddDate(0, 0, -mondayOffset(monthStart))
	padEnd := monthEnd.AddDate(0, 0, 6-mondayOffset(monthEnd))
	totalDays := int(padEnd.Sub(padStart).Hours()/24) + 1

	if totalDays%7 != 0 {
		// Should not happen with the Monday/Sunday padding, but a broken
		// grid must degrade to a flat list rather than fail.
		result.Fallback = flatDays(monthStart, monthEnd, hoursByDate)
		return result, nil
	}

	weeks := totalDays / 7
	matrix := make([][]float64, weeks)
	labels := make([][]string, weeks)
	weekLabels := make([]string, weeks)

	day := padStart
	for w := 0; w < weeks; w++ {
		matrix[w] = make([]float64, 7)
		labels[w] = make([]string, 7)
		weekLabels[w] = fmt.Sprintf("Week %d", w+1)
		for d := 0; d < 7; d++ {
			if !day.Before(monthStart) && !day.After(monthEnd) {
				matrix[w][d] = hoursByDate[day.Format(dateLayout)]
				labels[w][d] = day.Format("02")
			}
			day = day.AddDate(0, 0, 1)
		}
	}

	result.Matrix = matrix
	result.DateLabels = labels
	result.WeekLabels = weekLabels
	result.DayLabels = dayLabels
	return result, nil
}

// mondayOffset returns the Monday-first weekday index: Mon=0 .. Sun=6.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func flatDays(monthStart, monthEnd time.Time, hoursByDate map[string]float64) []calendar.DayHours {
	var days []calendar.DayHours
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		days = append(days, calendar.DayHours{Date: date, Hours: hoursByDate[date]})
	}
	return days
}

// monthSummary aggregates the month's entries. Best day ties resolve to the
// earliest date so the result does not depend on store ordering.
func monthSummary(entries []entry.DailyEntry) calendar.MonthSummary {
	var summary calendar.MonthSummary
	if len(entries) == 0 {
		return summary
	}

	var bestDate string
	var bestHours float64
	for _, e := range entries {
		summary.TotalHours += e.TotalHours
		if e.TotalHours > 0 {
			summary.WorkingDays++
		}
		if bestDate == "" || e.TotalHours > bestHours || (e.TotalHours == bestHours && e.Date < bestDate) {
			bestDate = e.Date
			bestHours = e.TotalHours
		}
	}

	summary.AverageHours = summary.TotalHours / float64(max(summary.WorkingDays, 1))
	summary.BestDay = bestDate
	return summary
}
