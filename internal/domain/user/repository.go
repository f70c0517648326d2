package user

import "context"

// Repository defines data access for user records.
type Repository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByTeamAndRole retrieves active users in a team with the given role.
	ListByTeamAndRole(ctx context.Context, teamID string, role Role) ([]User, error)

	// ListAll retrieves every user record (admin surface).
	ListAll(ctx context.Context) ([]User, error)

	// TouchLastLogin updates a user's last-login timestamp.
	TouchLastLogin(ctx context.Context, id string) error
}
