package engine

import (
	"context"
	"fmt"
	"time"
)

// Engine is the contract every recognition capability implements. A single
// instance is reused across tasks; implementations that are not reentrant must
// serialize internally.
type Engine interface {
	Name() string
	// Initialize prepares the engine for use. It is idempotent and called at
	// most once per process lifetime before the first extraction.
	Initialize(ctx context.Context) error
	// ExtractText recognizes the document at path and returns its text. Any
	// processing problem is reported as an *ExtractionError.
	ExtractText(ctx context.Context, path string) (string, error)
	// Cleanup releases engine resources. Idempotent.
	Cleanup() error
}

// ExtractionError reports a recognition failure of a single engine. It is
// absorbed by the orchestration layer and surfaced as data on the raw result,
// never as a task failure.
type ExtractionError struct {
	Engine  string
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Engine, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Engine, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func NewExtractionError(engine, message string, err error) *ExtractionError {
	return &ExtractionError{Engine: engine, Message: message, Err: err}
}

// RawResult is one engine's unprocessed output for one task. Immutable after
// creation. A set Error implies empty Text and zero ProcessingTime.
type RawResult struct {
	EngineName     string
	Text           string
	ProcessingTime time.Duration
	Error          string
}

// Failed reports whether the engine produced an error instead of text.
func (r RawResult) Failed() bool {
	return r.Error != ""
}
