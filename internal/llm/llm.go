package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for whole-resume parsing and job
// description generation.
type Client interface {
	ParseResume(ctx context.Context, text string) (json.RawMessage, error)
	GenerateDescription(ctx context.Context, jobSummary string) (string, error)
}

// ErrMalformedOutput signals that the provider returned something that is
// not parseable JSON after fence stripping. It indicates collaborator
// malfunction, not bad user input, and maps to an internal error upstream.
var ErrMalformedOutput = errors.New("malformed LLM output")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is used when no provider credentials are present.
type PlaceholderClient struct{}

// ParseResume returns ErrNotConfigured.
func (PlaceholderClient) ParseResume(ctx context.Context, text string) (json.RawMessage, error) {
	_ = ctx
	_ = text
	return nil, ErrNotConfigured
}

// GenerateDescription returns ErrNotConfigured.
func (PlaceholderClient) GenerateDescription(ctx context.Context, jobSummary string) (string, error) {
	_ = ctx
	_ = jobSummary
	return "", ErrNotConfigured
}
