package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/domain/export"
)

type ExportServiceImpl struct {
	entryRepo entry.Repository

	// injectable clock, fixed in tests
	now func() time.Time
}

func NewExportService(entryRepo entry.Repository) export.Service {
	return &ExportServiceImpl{
		entryRepo: entryRepo,
		now:       time.Now,
	}
}

// Export implements export.Service. Internal identifiers never leave the
// service; activity hours are spread into one column per activity id seen
// anywhere in the history, missing values filled with zero.
func (s *ExportServiceImpl) Export(ctx context.Context, userID string, format export.Format) (export.Result, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID, nil, nil)
	if err != nil {
		return export.Result{}, fmt.Errorf("list entries for export: %w", err)
	}

	if len(entries) == 0 {
		return export.Result{
			Content:     []byte(export.NoDataSentinel),
			ContentType: "text/plain; charset=utf-8",
			Filename:    "productivity_data.txt",
		}, nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	activityIDs := activityColumns(entries)
	summary := buildSummary(entries)

	switch format {
	case export.FormatCSV:
		content, err := renderCSV(entries, activityIDs, false, summary)
		if err != nil {
			return export.Result{}, err
		}
		return export.Result{Content: content, ContentType: "text/csv", Filename: "productivity_data.csv"}, nil

	case export.FormatExcel:
		// No spreadsheet encoder is wired in; serve the documented degraded
		// form instead of losing data: the CSV table plus a summary section.
		content, err := renderCSV(entries, activityIDs, true, summary)
		if err != nil {
			return export.Result{}, err
		}
		return export.Result{Content: content, ContentType: "text/csv", Filename: "productivity_data.csv"}, nil

	case export.FormatJSON:
		content, err := s.renderJSON(entries, activityIDs)
		if err != nil {
			return export.Result{}, err
		}
		return export.Result{Content: content, ContentType: "application/json", Filename: "productivity_data.json"}, nil

	default:
		return export.Result{}, fmt.Errorf("%w: %q", export.ErrUnsupportedFormat, format)
	}
}

// activityColumns returns the sorted union of activity ids across entries.
func activityColumns(entries []entry.DailyEntry) []string {
	seen := make(map[string]bool)
	for _, e := range entries {
		for id := range e.ActivityHours {
			seen[id] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func buildSummary(entries []entry.DailyEntry) export.Summary {
	var total float64
	for _, e := range entries {
		total += e.TotalHours
	}
	return export.Summary{
		TotalEntries: len(entries),
		TotalHours:   total,
		AverageHours: total / float64(len(entries)),
		DateRange:    fmt.Sprintf("%s to %s", entries[0].Date, entries[len(entries)-1].Date),
	}
}

func renderCSV(entries []entry.DailyEntry, activityIDs []string, withSummary bool, summary export.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "total_hours", "notes", "work_location", "mood_score", "energy_level"}
	for _, id := range activityIDs {
		header = append(header, "activity_"+id)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.Date,
			formatHours(e.TotalHours),
			e.Notes,
			e.WorkLocation,
			strconv.Itoa(e.MoodScore),
			strconv.Itoa(e.EnergyLevel),
		}
		for _, id := range activityIDs {
			row = append(row, formatHours(e.ActivityHours[id]))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	if withSummary {
		summaryRows := [][]string{
			{},
			{"metric", "value"},
			{"Total Entries", strconv.Itoa(summary.TotalEntries)},
			{"Total Hours", formatHours(summary.TotalHours)},
			{"Average Daily Hours", formatHours(summary.AverageHours)},
			{"Date Range", summary.DateRange},
		}
		for _, row := range summaryRows {
			if len(row) == 0 {
				row = []string{""}
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write csv summary: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

type jsonEnvelope struct {
	ExportTimestamp string                   `json:"export_timestamp"`
	TotalEntries    int                      `json:"total_entries"`
	Data            []map[string]interface{} `json:"data"`
}

func (s *ExportServiceImpl) renderJSON(entries []entry.DailyEntry, activityIDs []string) ([]byte, error) {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		row := map[string]interface{}{
			"date":          e.Date,
			"total_hours":   e.TotalHours,
			"notes":         e.Notes,
			"work_location": e.WorkLocation,
			"mood_score":    e.MoodScore,
			"energy_level":  e.EnergyLevel,
		}
		for _, id := range activityIDs {
			row["activity_"+id] = e.ActivityHours[id]
		}
		rows = append(rows, row)
	}

	envelope := jsonEnvelope{
		ExportTimestamp: s.now().UTC().Format("2006-01-02 15:04:05"),
		TotalEntries:    len(rows),
		Data:            rows,
	}
	return json.MarshalIndent(envelope, "", "  ")
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
