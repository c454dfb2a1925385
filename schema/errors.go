package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the schema package.
var (
	// ErrNotConfigured indicates the catalog has no executor to fetch
	// the schema with.
	ErrNotConfigured = errors.New("schema: graphql executor not configured")

	// ErrMalformedSchema indicates an introspection document without
	// the top-level __schema container.
	ErrMalformedSchema = errors.New("schema: document missing __schema container")
)

// FetchError reports a failed introspection request: a transport
// failure, a non-2xx HTTP response, or GraphQL-level errors in the
// introspection response. Fetches are never retried by this package.
type FetchError struct {
	// Status is the HTTP status line when the failure was an HTTP
	// response; empty for transport failures.
	Status string
	// Err is the underlying cause.
	Err error
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("schema: introspection fetch failed (%s): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("schema: introspection fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UnknownTypeError reports a lookup against a type name absent from the
// index. Known carries a short sample of valid names to aid correction.
type UnknownTypeError struct {
	// Name is the type name that failed to resolve.
	Name string
	// Known is a sample of type names present in the index.
	Known []string
	// Total is the full count of indexed types.
	Total int
}

func (e *UnknownTypeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("schema: type %q not found", e.Name)
	}
	sample := strings.Join(e.Known, ", ")
	if e.Total > len(e.Known) {
		return fmt.Sprintf("schema: type %q not found (known types include %s, ... %d total)", e.Name, sample, e.Total)
	}
	return fmt.Sprintf("schema: type %q not found (known types: %s)", e.Name, sample)
}
