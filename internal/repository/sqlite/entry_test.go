package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/database"
)

func setupEntryRepo(t *testing.T) *EntryRepository {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewEntryRepository(db)
	require.NoError(t, repo.InitTable(context.Background()))
	return repo
}

func TestEntryRepository_UpsertAndList(t *testing.T) {
	t.Parallel()
	repo := setupEntryRepo(t)
	ctx := context.Background()

	saved, err := repo.Upsert(ctx, entry.DailyEntry{
		ID:            "e1",
		UserID:        "u1",
		Date:          "2025-06-10",
		ActivityHours: map[string]float64{"oncall": 4, "migration_work": 3.5},
		TotalHours:    7.5,
		Notes:         "routine",
		WorkLocation:  "office",
		MoodScore:     7,
		EnergyLevel:   6,
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", saved.ID)
	assert.False(t, saved.UpdatedAt.IsZero())

	entries, err := repo.ListByUser(ctx, "u1", nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7.5, entries[0].TotalHours)
	assert.Equal(t, 4.0, entries[0].ActivityHours["oncall"])
	assert.Equal(t, "routine", entries[0].Notes)
}

func TestEntryRepository_UpsertReplacesSameDay(t *testing.T) {
	t.Parallel()
	repo := setupEntryRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, entry.DailyEntry{
		ID: "e1", UserID: "u1", Date: "2025-06-10",
		ActivityHours: map[string]float64{"oncall": 4}, TotalHours: 4,
		WorkLocation: "office", MoodScore: 5, EnergyLevel: 5,
	})
	require.NoError(t, err)

	// Second save for the same (user, date) must replace, not duplicate,
	// and must keep the original row id.
	replaced, err := repo.Upsert(ctx, entry.DailyEntry{
		ID: "e2", UserID: "u1", Date: "2025-06-10",
		ActivityHours: map[string]float64{"oncall": 6}, TotalHours: 6,
		Notes: "revised", WorkLocation: "remote", MoodScore: 8, EnergyLevel: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", replaced.ID)

	entries, err := repo.ListByUser(ctx, "u1", nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 6.0, entries[0].TotalHours)
	assert.Equal(t, "revised", entries[0].Notes)
	assert.Equal(t, "remote", entries[0].WorkLocation)
}

func TestEntryRepository_SameDayDifferentUsers(t *testing.T) {
	t.Parallel()
	repo := setupEntryRepo(t)
	ctx := context.Background()

	for _, e := range []entry.DailyEntry{
		{ID: "e1", UserID: "u1", Date: "2025-06-10", TotalHours: 8, WorkLocation: "office", MoodScore: 5, EnergyLevel: 5},
		{ID: "e2", UserID: "u2", Date: "2025-06-10", TotalHours: 6, WorkLocation: "office", MoodScore: 5, EnergyLevel: 5},
	} {
		_, err := repo.Upsert(ctx, e)
		require.NoError(t, err)
	}

	entries, err := repo.ListByUser(ctx, "u1", nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 8.0, entries[0].TotalHours)
}

func TestEntryRepository_ListByUser_DateRange(t *testing.T) {
	t.Parallel()
	repo := setupEntryRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2025-06-01", "2025-06-10", "2025-06-20"} {
		_, err := repo.Upsert(ctx, entry.DailyEntry{
			ID: "e-" + date, UserID: "u1", Date: date, TotalHours: 8,
			WorkLocation: "office", MoodScore: 5, EnergyLevel: 5,
		})
		require.NoError(t, err)
	}

	start, end := "2025-06-05", "2025-06-15"
	entries, err := repo.ListByUser(ctx, "u1", &start, &end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-06-10", entries[0].Date)

	// Bounds are inclusive on both ends.
	start, end = "2025-06-01", "2025-06-20"
	entries, err = repo.ListByUser(ctx, "u1", &start, &end)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = repo.ListByUser(ctx, "u1", nil, &end)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestEntryRepository_ListByUser_Empty(t *testing.T) {
	t.Parallel()
	repo := setupEntryRepo(t)

	entries, err := repo.ListByUser(context.Background(), "nobody", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
