package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/domain/export"
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
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestService(repo entry.Repository) *ExportServiceImpl {
	return &ExportServiceImpl{
		entryRepo: repo,
		now: func() time.Time {
			return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func testEntries() []entry.DailyEntry {
	return []entry.DailyEntry{
		{
			UserID:        "u1",
			Date:          "2025-06-10",
			ActivityHours: map[string]float64{"migration_work": 3, "database_support": 5},
			TotalHours:    8,
			Notes:         "routine day",
			WorkLocation:  "office",
			MoodScore:     7,
			EnergyLevel:   6,
		},
		{
			UserID:        "u1",
			Date:          "2025-06-09",
			ActivityHours: map[string]float64{"oncall": 4},
			TotalHours:    4,
			WorkLocation:  "remote",
			MoodScore:     6,
			EnergyLevel:   7,
		},
	}
}

func TestExportService_Export_NoDataSentinel(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeEntryRepo{})

	for _, format := range []export.Format{export.FormatCSV, export.FormatExcel, export.FormatJSON} {
		result, err := svc.Export(context.Background(), "u1", format)
		require.NoError(t, err)
		assert.Equal(t, export.NoDataSentinel, string(result.Content))
		assert.Equal(t, "text/plain; charset=utf-8", result.ContentType)
	}
}

func TestExportService_Export_UnsupportedFormat(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeEntryRepo{entries: testEntries()})

	_, err := svc.Export(context.Background(), "u1", export.Format("pdf"))

	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestExportService_Export_CSV(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeEntryRepo{entries: testEntries()})

	result, err := svc.Export(context.Background(), "u1", export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "productivity_data.csv", result.Filename)

	rows, err := csv.NewReader(strings.NewReader(string(result.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Activity columns are the sorted union across the whole history.
	assert.Equal(t, []string{
		"date", "total_hours", "notes", "work_location", "mood_score", "energy_level",
		"activity_database_support", "activity_migration_work", "activity_oncall",
	}, rows[0])

	// Rows come out oldest first; unused activities are zero-filled.
	assert.Equal(t, []string{"2025-06-09", "4", "", "remote", "6", "7", "0", "0", "4"}, rows[1])
	assert.Equal(t, []string{"2025-06-10", "8", "routine day", "office", "7", "6", "5", "3", "0"}, rows[2])
}

func TestExportService_Export_ExcelDegradesToCSVWithSummary(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeEntryRepo{entries: testEntries()})

	result, err := svc.Export(context.Background(), "u1", export.FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)

	content := string(result.Content)
	assert.Contains(t, content, "Total Entries,2")
	assert.Contains(t, content, "Total Hours,12")
	assert.Contains(t, content, "Average Daily Hours,6")
	assert.Contains(t, content, "Date Range,2025-06-09 to 2025-06-10")
}

func TestExportService_Export_JSONEnvelope(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeEntryRepo{entries: testEntries()})

	result, err := svc.Export(context.Background(), "u1", export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", result.ContentType)
	assert.Equal(t, "productivity_data.json", result.Filename)

	var envelope struct {
		ExportTimestamp string                   `json:"export_timestamp"`
		TotalEntries    int                      `json:"total_entries"`
		Data            []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(result.Content, &envelope))

	assert.Equal(t, "2025-06-15 12:00:00", envelope.ExportTimestamp)
	assert.Equal(t, 2, envelope.TotalEntries)
	require.Len(t, envelope.Data, 2)

	first := envelope.Data[0]
	assert.Equal(t, "2025-06-09", first["date"])
	assert.Equal(t, 4.0, first["total_hours"])
	assert.Equal(t, 4.0, first["activity_oncall"])
	assert.Equal(t, 0.0, first["activity_migration_work"])

	// Internal identifiers must not leak into the export.
	_, hasID := first["id"]
	assert.False(t, hasID)
	_, hasUserID := first["user_id"]
	assert.False(t, hasUserID)
}
