package team

import "errors"

// Team domain errors
var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrInvalidCatalog = errors.New("invalid team catalog")
)
