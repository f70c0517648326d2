package user

import "context"

// Service defines business logic for user records.
type Service interface {
	// Register creates a user with a goal snapshot seeded from the team
	// catalog for the user's location type.
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// GetUser retrieves a single user.
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// IdentifyByEmail resolves an already-verified email to its user record
	// and marks the login time. The caller is responsible for having
	// verified the identity; no credentials are checked here.
	IdentifyByEmail(ctx context.Context, email string) (UserResponse, error)

	// ListTeamMembers retrieves active users in a team with the given role.
	ListTeamMembers(ctx context.Context, teamID string, role Role) ([]UserResponse, error)

	// ListAllUsers retrieves every user (admin surface).
	ListAllUsers(ctx context.Context) ([]UserResponse, error)
}
