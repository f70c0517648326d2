package user

import (
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/validator"
)

// RegisterRequest creates a user record. Credentials are handled by the
// external identity provider; this service only stores the profile and the
// goal snapshot.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Team         string `json:"team"`
	LocationType string `json:"location_type"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if !validator.IsInSlice(r.Role, Roles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of employee, manager, admin"})
	}
	if validator.IsEmpty(r.Team) {
		errs = append(errs, validator.ValidationError{Field: "team", Message: "team is required"})
	}
	if r.LocationType != string(team.LocationOnshore) && r.LocationType != string(team.LocationOffshore) {
		errs = append(errs, validator.ValidationError{Field: "location_type", Message: "must be onshore or offshore"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserResponse is the outward representation of a user.
type UserResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Role               string             `json:"role"`
	Team               string             `json:"team"`
	LocationType       string             `json:"location_type"`
	ExpectedDailyHours float64            `json:"expected_daily_hours"`
	Goals              map[string]float64 `json:"goals"`
}

// ToResponse converts an entity to its outward form.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		Team:               u.Team,
		LocationType:       string(u.LocationType),
		ExpectedDailyHours: team.ExpectedDailyHours(u.LocationType),
		Goals:              u.Goals,
	}
}
