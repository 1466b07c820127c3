package providers

import (
	"context"
	"errors"
	"fmt"
)

// GenerationRequest is one structured-output call to a generative model
type GenerationRequest struct {
	// Operation names the call for logs and metrics, e.g. "rank" or "compare"
	Operation  string
	System     string
	User       string
	SchemaName string
	// Schema is a JSON Schema object describing the expected response
	Schema map[string]any
}

// GenerativeProvider returns raw model text expected to parse as JSON
// matching the request schema. Conformance is not guaranteed; callers validate.
type GenerativeProvider interface {
	GenerateJSON(ctx context.Context, req GenerationRequest) (string, error)
	Name() string
}

// FailureKind classifies an upstream failure for retry decisions
type FailureKind int

const (
	FailurePermanent FailureKind = iota
	FailureTransient
)

func (k FailureKind) String() string {
	if k == FailureTransient {
		return "transient"
	}
	return "permanent"
}

// GenerationError is returned by GenerativeProvider implementations. Kind is
// set by the client that observed the failure.
type GenerationError struct {
	Provider   string
	Kind       FailureKind
	StatusCode int
	Reason     string
	Err        error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s generation failed (%s)", e.Provider, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err carries a transient GenerationError
func IsTransient(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Kind == FailureTransient
}
