package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

// Upsert implements entry.Repository.
func (r *entryRepository) Upsert(ctx context.Context, e entry.DailyEntry) (entry.DailyEntry, error) {
	date, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return entry.DailyEntry{}, fmt.Errorf("parse entry date: %w", entry.ErrInvalidDate)
	}

	query := `
		INSERT INTO daily_entries (
			id, user_id, date, activity_hours, total_hours,
			notes, work_location, mood_score, energy_level, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, now()
		)
		ON CONFLICT (user_id, date) DO UPDATE SET
			activity_hours = EXCLUDED.activity_hours,
			total_hours    = EXCLUDED.total_hours,
			notes          = EXCLUDED.notes,
			work_location  = EXCLUDED.work_location,
			mood_score     = EXCLUDED.mood_score,
			energy_level   = EXCLUDED.energy_level,
			updated_at     = now()
		RETURNING id, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		e.ID,
		e.UserID,
		date,
		e.ActivityHours,
		e.TotalHours,
		e.Notes,
		e.WorkLocation,
		e.MoodScore,
		e.EnergyLevel,
	).Scan(&e.ID, &e.UpdatedAt)
	if err != nil {
		return entry.DailyEntry{}, fmt.Errorf("failed to upsert daily entry: %w", err)
	}

	return e, nil
}

// ListByUser implements entry.Repository.
func (r *entryRepository) ListByUser(ctx context.Context, userID string, startDate, endDate *string) ([]entry.DailyEntry, error) {
	query := `
		SELECT id, user_id, date, activity_hours, total_hours,
			   notes, work_location, mood_score, energy_level, updated_at
		FROM daily_entries
		WHERE user_id = $1
	`
	args := []any{userID}

	if startDate != nil {
		start, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			return nil, fmt.Errorf("parse start date: %w", entry.ErrInvalidDate)
		}
		args = append(args, start)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if endDate != nil {
		end, err := time.Parse("2006-01-02", *endDate)
		if err != nil {
			return nil, fmt.Errorf("parse end date: %w", entry.ErrInvalidDate)
		}
		args = append(args, end)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.DailyEntry
	for rows.Next() {
		var e entry.DailyEntry
		var date time.Time
		err := rows.Scan(
			&e.ID, &e.UserID, &date, &e.ActivityHours, &e.TotalHours,
			&e.Notes, &e.WorkLocation, &e.MoodScore, &e.EnergyLevel, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily entry: %w", err)
		}
		e.Date = date.Format("2006-01-02")
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily entries: %w", err)
	}

	return entries, nil
}

func NewEntryRepository(db *database.DB) entry.Repository {
	return &entryRepository{db: db}
}
