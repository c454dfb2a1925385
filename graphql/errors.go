package graphql

import (
	"errors"
	"fmt"
)

// Common errors returned by the graphql package.
var (
	// ErrNoEndpoint indicates a client was constructed without an
	// endpoint URL.
	ErrNoEndpoint = errors.New("graphql: endpoint not configured")

	// ErrNoData indicates a response carried no data payload.
	ErrNoData = errors.New("graphql: response has no data")

	// ErrQueryFailed indicates the endpoint accepted the request but
	// returned GraphQL-level errors.
	ErrQueryFailed = errors.New("graphql: query returned errors")
)

// StatusError reports a non-2xx HTTP response from the endpoint.
type StatusError struct {
	// Code is the HTTP status code.
	Code int
	// Status is the full status line, e.g. "403 Forbidden".
	Status string
	// Body is a short excerpt of the response body.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("graphql: request failed: %s", e.Status)
	}
	return fmt.Sprintf("graphql: request failed: %s: %s", e.Status, e.Body)
}
