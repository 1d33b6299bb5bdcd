package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new parse result.
func (r *PGRepo) Create(ctx context.Context, result ParseResult) error {
	const query = `
INSERT INTO parse_results (
    id,
    file_name,
    storage_key,
    engine,
    record,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	engine := result.Engine
	if engine == "" {
		engine = "heuristic"
	}

	var storageKey sql.NullString
	if result.StorageKey != "" {
		storageKey = sql.NullString{String: result.StorageKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		result.ID,
		result.FileName,
		storageKey,
		engine,
		[]byte(result.Record),
		result.CreatedAt,
	)
	return err
}

// GetByID fetches a parse result by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (ParseResult, error) {
	const query = `
SELECT id, file_name, storage_key, engine, record, created_at
FROM parse_results
WHERE id = $1
LIMIT 1`

	var result ParseResult
	var storageKey sql.NullString
	var record []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&result.ID,
		&result.FileName,
		&storageKey,
		&result.Engine,
		&record,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ParseResult{}, ErrNotFound
		}
		return ParseResult{}, err
	}
	if storageKey.Valid {
		result.StorageKey = storageKey.String
	}
	result.Record = record
	return result, nil
}

var _ Repo = (*PGRepo)(nil)
