package resumes

import (
	"encoding/json"
	"errors"
	"time"
)

// ParseResult is one stored extraction outcome. Record holds the assembled
// resume JSON exactly as it was returned to the caller.
type ParseResult struct {
	ID         string          `json:"id"`
	FileName   string          `json:"file_name"`
	StorageKey string          `json:"-"`
	Engine     string          `json:"engine"`
	Record     json.RawMessage `json:"record"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ErrNotFound is returned when a parse result does not exist.
var ErrNotFound = errors.New("parse result not found")
