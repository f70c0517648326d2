package entry

import (
	"github.com/opspulse/opspulse-backend-go/internal/pkg/validator"
)

// SaveEntryRequest is the payload for saving or replacing a daily entry.
// TotalHours is never accepted from the client; it is computed server-side.
type SaveEntryRequest struct {
	UserID        string             `json:"-"`
	Date          string             `json:"date"`
	ActivityHours map[string]float64 `json:"activity_hours"`
	Notes         string             `json:"notes"`
	WorkLocation  string             `json:"work_location"`
	MoodScore     int                `json:"mood_score"`
	EnergyLevel   int                `json:"energy_level"`
}

// ApplyDefaults fills the documented defaults for omitted optional fields.
func (r *SaveEntryRequest) ApplyDefaults() {
	if r.WorkLocation == "" {
		r.WorkLocation = LocationOffice
	}
	if r.MoodScore == 0 {
		r.MoodScore = 5
	}
	if r.EnergyLevel == 0 {
		r.EnergyLevel = 5
	}
}

func (r *SaveEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	for id, hours := range r.ActivityHours {
		if hours < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "activity_hours." + id,
				Message: "hours must not be negative",
			})
		}
	}
	if !validator.IsInSlice(r.WorkLocation, WorkLocations) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_location",
			Message: "must be one of office, remote, hybrid, client-site, travel",
		})
	}
	if r.MoodScore < 1 || r.MoodScore > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "mood_score",
			Message: "must be between 1 and 10",
		})
	}
	if r.EnergyLevel < 1 || r.EnergyLevel > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "energy_level",
			Message: "must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryResponse is the outward representation of a daily entry.
type EntryResponse struct {
	Date          string             `json:"date"`
	ActivityHours map[string]float64 `json:"activity_hours"`
	TotalHours    float64            `json:"total_hours"`
	Notes         string             `json:"notes,omitempty"`
	WorkLocation  string             `json:"work_location"`
	MoodScore     int                `json:"mood_score"`
	EnergyLevel   int                `json:"energy_level"`
}

// ToResponse converts an entity to its outward form.
func ToResponse(e DailyEntry) EntryResponse {
	return EntryResponse{
		Date:          e.Date,
		ActivityHours: e.ActivityHours,
		TotalHours:    e.TotalHours,
		Notes:         e.Notes,
		WorkLocation:  e.WorkLocation,
		MoodScore:     e.MoodScore,
		EnergyLevel:   e.EnergyLevel,
	}
}
