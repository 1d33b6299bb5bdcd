package resumes

import "context"

// Repo defines persistence operations for parse results.
type Repo interface {
	Create(ctx context.Context, result ParseResult) error
	GetByID(ctx context.Context, id string) (ParseResult, error)
}
