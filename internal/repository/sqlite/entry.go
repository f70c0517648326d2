package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
)

// EntryRepository is the embedded single-file backend for daily entries.
// Dates are stored as TEXT in YYYY-MM-DD form, which compares correctly
// lexicographically, so range filters work without date parsing.
type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// InitTable creates the daily_entries table if it does not exist yet.
func (r *EntryRepository) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS daily_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			activity_hours TEXT NOT NULL DEFAULT '{}',
			total_hours REAL NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			work_location TEXT NOT NULL DEFAULT 'office',
			mood_score INTEGER NOT NULL DEFAULT 5,
			energy_level INTEGER NOT NULL DEFAULT 5,
			updated_at TEXT NOT NULL,
			UNIQUE(user_id, date)
		);
	`
	_, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("create daily_entries table: %w", err)
	}
	return nil
}

// Upsert implements entry.Repository.
func (r *EntryRepository) Upsert(ctx context.Context, e entry.DailyEntry) (entry.DailyEntry, error) {
	hours, err := json.Marshal(e.ActivityHours)
	if err != nil {
		return entry.DailyEntry{}, fmt.Errorf("marshal activity hours: %w", err)
	}

	e.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO daily_entries (
			id, user_id, date, activity_hours, total_hours,
			notes, work_location, mood_score, energy_level, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			activity_hours = excluded.activity_hours,
			total_hours = excluded.total_hours,
			notes = excluded.notes,
			work_location = excluded.work_location,
			mood_score = excluded.mood_score,
			energy_level = excluded.energy_level,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Date, string(hours), e.TotalHours,
		e.Notes, e.WorkLocation, e.MoodScore, e.EnergyLevel,
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return entry.DailyEntry{}, fmt.Errorf("upsert daily entry: %w", err)
	}

	// The conflict path keeps the original row id; read it back so the
	// returned entry always carries the stored id.
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM daily_entries WHERE user_id = ? AND date = ?`,
		e.UserID, e.Date,
	).Scan(&e.ID)
	if err != nil {
		return entry.DailyEntry{}, fmt.Errorf("read back daily entry: %w", err)
	}

	return e, nil
}

// ListByUser implements entry.Repository.
func (r *EntryRepository) ListByUser(ctx context.Context, userID string, startDate, endDate *string) ([]entry.DailyEntry, error) {
	query := `
		SELECT id, user_id, date, activity_hours, total_hours,
			   notes, work_location, mood_score, energy_level, updated_at
		FROM daily_entries
		WHERE user_id = ?
	`
	args := []any{userID}

	if startDate != nil {
		query += ` AND date >= ?`
		args = append(args, *startDate)
	}
	if endDate != nil {
		query += ` AND date <= ?`
		args = append(args, *endDate)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.DailyEntry
	for rows.Next() {
		var e entry.DailyEntry
		var hours, updatedAt string
		err := rows.Scan(
			&e.ID, &e.UserID, &e.Date, &hours, &e.TotalHours,
			&e.Notes, &e.WorkLocation, &e.MoodScore, &e.EnergyLevel, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan daily entry: %w", err)
		}
		if err := json.Unmarshal([]byte(hours), &e.ActivityHours); err != nil {
			return nil, fmt.Errorf("unmarshal activity hours: %w", err)
		}
		e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read daily entries: %w", err)
	}

	return entries, nil
}
