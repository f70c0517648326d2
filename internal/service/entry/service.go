package entry

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
)

type EntryServiceImpl struct {
	entryRepo entry.Repository
}

func NewEntryService(entryRepo entry.Repository) entry.Service {
	return &EntryServiceImpl{entryRepo: entryRepo}
}

// SaveEntry implements entry.Service. TotalHours is always recomputed from
// the activity map; a second save for the same (user, date) replaces the
// first.
func (s *EntryServiceImpl) SaveEntry(ctx context.Context, req entry.SaveEntryRequest) (entry.EntryResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	hours := req.ActivityHours
	if hours == nil {
		hours = map[string]float64{}
	}

	// The store keeps the original id when the (user, date) pair already
	// exists, so this id only survives for first-time saves.
	e := entry.DailyEntry{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Date:          req.Date,
		ActivityHours: hours,
		TotalHours:    entry.SumActivityHours(hours),
		Notes:         req.Notes,
		WorkLocation:  req.WorkLocation,
		MoodScore:     req.MoodScore,
		EnergyLevel:   req.EnergyLevel,
	}

	saved, err := s.entryRepo.Upsert(ctx, e)
	if err != nil {
		return entry.EntryResponse{}, fmt.Errorf("save entry: %w", err)
	}

	return entry.ToResponse(saved), nil
}

// GetMyEntries implements entry.Service. The store does not guarantee an
// order, so entries are sorted newest first here.
func (s *EntryServiceImpl) GetMyEntries(ctx context.Context, userID string, startDate, endDate *string) ([]entry.EntryResponse, error) {
	if startDate != nil && endDate != nil && *startDate > *endDate {
		return nil, entry.ErrInvalidDateRange
	}

	entries, err := s.entryRepo.ListByUser(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })

	responses := make([]entry.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, entry.ToResponse(e))
	}
	return responses, nil
}
