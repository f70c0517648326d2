package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/dashboard"
	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/database"
)

type statsRepository struct {
	db *database.DB
}

// CountUsers implements dashboard.StatsRepository.
func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountEntries implements dashboard.StatsRepository.
func (r *statsRepository) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM daily_entries`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// CountActiveOn implements dashboard.StatsRepository.
func (r *statsRepository) CountActiveOn(ctx context.Context, isoDate string) (int64, error) {
	date, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0, fmt.Errorf("parse date: %w", entry.ErrInvalidDate)
	}

	var n int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM daily_entries WHERE date = $1`, date,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return n, nil
}

func NewStatsRepository(db *database.DB) dashboard.StatsRepository {
	return &statsRepository{db: db}
}
