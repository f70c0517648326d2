package export

import "errors"

// Export domain errors
var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
