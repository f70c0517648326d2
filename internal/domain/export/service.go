package export

import "context"

// Service flattens a user's full entry history into tabular form and renders
// it in the requested format.
type Service interface {
	Export(ctx context.Context, userID string, format Format) (Result, error)
}
