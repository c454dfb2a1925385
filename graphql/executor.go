package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Executor is the single capability tool handlers and the schema catalog
// depend on: execute one GraphQL request and return the parsed envelope.
// Transport and HTTP failures surface as the returned error; GraphQL-level
// errors travel inside the Response.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) (*Response, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, query string, variables map[string]any) (*Response, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	return f(ctx, query, variables)
}

// Response is the standard GraphQL response envelope. Exactly one of
// Data and Errors is meaningful for most requests, though partial
// responses may carry both.
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []ResponseError `json:"errors,omitempty"`
}

// ResponseError is one GraphQL-level error.
type ResponseError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e ResponseError) Error() string {
	return e.Message
}

// Err folds the response's GraphQL-level errors into a single error,
// or returns nil when the response carries none.
func (r *Response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return fmt.Errorf("%w: %s", ErrQueryFailed, strings.Join(msgs, "; "))
}

// DecodeData unmarshals the data payload into v. It returns ErrNoData
// when the response has no data key.
func (r *Response) DecodeData(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("graphql: decode data: %w", err)
	}
	return nil
}
