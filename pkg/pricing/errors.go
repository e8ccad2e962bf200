package pricing

import (
	"errors"
	"fmt"
)

// ErrModelNotFound is returned when a model is absent from every pricing tier.
var ErrModelNotFound = errors.New("model not found in pricing tables")

// ModelNotFoundError provides the model name behind a failed pricing lookup.
// It unwraps to ErrModelNotFound for errors.Is matching.
type ModelNotFoundError struct {
	// Model is the model name that could not be resolved.
	Model string
}

// Error implements the error interface.
func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("no pricing found for model %q", e.Model)
}

// Unwrap returns the underlying error for error chain support.
func (e *ModelNotFoundError) Unwrap() error {
	return ErrModelNotFound
}
