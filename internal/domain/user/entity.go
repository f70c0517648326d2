package user

import (
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, user management
	RoleManager  Role = "manager"  // Team dashboards and reports
	RoleEmployee Role = "employee" // Own entries and analytics
)

// Roles lists the accepted role values.
var Roles = []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}

// User is identity plus policy selection. Goals are a snapshot of the team's
// goal profile for the user's location, taken at registration time; later
// catalog changes do not rewrite them.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Team         string
	LocationType team.LocationType
	Goals        map[string]float64
	Active       bool
	CreatedAt    time.Time
	LastLogin    time.Time
}

// IsAdmin checks if user has admin access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
