package entry

import "errors"

// Entry domain errors. Field-level problems on a save request surface as
// validator.ValidationErrors instead.
var (
	ErrInvalidDate      = errors.New("invalid entry date")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
