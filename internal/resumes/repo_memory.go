package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	results map[string]ParseResult
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{results: make(map[string]ParseResult)}
}

// Create stores a parse result.
func (r *MemoryRepo) Create(ctx context.Context, result ParseResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.ID] = result
	return nil
}

// GetByID fetches a parse result by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return ParseResult{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[id]
	if !ok {
		return ParseResult{}, ErrNotFound
	}
	return result, nil
}

var _ Repo = (*MemoryRepo)(nil)
