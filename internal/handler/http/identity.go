package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
)

// Identity is the caller's verified token payload.
type Identity struct {
	UserID       string
	Email        string
	Role         user.Role
	Team         string
	LocationType team.LocationType
}

// identityFromRequest extracts the caller identity from the verified JWT.
// The auth middleware has already rejected requests without a valid access
// token, so a failure here means a malformed token slipped through.
func identityFromRequest(r *http.Request) (Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Identity{}, user.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, user.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	teamID, _ := claims["team"].(string)
	locationType, _ := claims["location_type"].(string)

	return Identity{
		UserID:       userID,
		Email:        email,
		Role:         user.Role(role),
		Team:         teamID,
		LocationType: team.ParseLocationType(locationType),
	}, nil
}
