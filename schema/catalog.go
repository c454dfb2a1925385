package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/admingraph/shopify-mcp/graphql"
)

// Options configures a Catalog.
type Options struct {
	// Executor performs the introspection request on a schema fetch.
	// Required for any operation that may hit the network.
	Executor graphql.Executor

	// Store persists fetched documents across process restarts. Nil
	// disables persistence.
	Store *Store

	// Logger receives cache diagnostics. Nil falls back to
	// slog.Default().
	Logger *slog.Logger
}

// Catalog owns the process-wide schema state for one store: it loads
// the introspection document on demand, caches it in memory and through
// the Store, and answers type and field lookups against the in-memory
// index.
//
// Construct one Catalog per configured store at startup and inject it
// into every component that needs schema answers.
type Catalog struct {
	mu    sync.Mutex
	exec  graphql.Executor
	store *Store
	log   *slog.Logger
	index *Index
}

// NewCatalog creates a Catalog.
func NewCatalog(opts Options) *Catalog {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{
		exec:  opts.Executor,
		store: opts.Store,
		log:   log,
	}
}

// Load returns the introspection document. Unless force is set, it
// prefers the in-memory index, then the persistent store, and only then
// the network; force always fetches and replaces both caches. Persisting
// a fetched document is best-effort: a failed cache write is logged and
// the fetched document still serves the current process.
func (c *Catalog) Load(ctx context.Context, force bool) (*Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx, force)
}

func (c *Catalog) loadLocked(ctx context.Context, force bool) (*Document, error) {
	if !force {
		if c.index != nil {
			return c.index.Document(), nil
		}
		if c.store != nil {
			doc, err := c.store.Read()
			if err != nil {
				c.log.Warn("schema cache read failed", "path", c.store.Path(), "err", err)
			} else if doc != nil {
				if idx, buildErr := BuildIndex(doc); buildErr == nil {
					c.index = idx
					c.log.Debug("schema loaded from cache", "path", c.store.Path(), "types", idx.Len())
					return doc, nil
				}
			}
		}
	}
	return c.fetchLocked(ctx)
}

func (c *Catalog) fetchLocked(ctx context.Context) (*Document, error) {
	if c.exec == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.exec.Execute(ctx, IntrospectionQuery, nil)
	if err != nil {
		var statusErr *graphql.StatusError
		if errors.As(err, &statusErr) {
			return nil, &FetchError{Status: statusErr.Status, Err: err}
		}
		return nil, &FetchError{Err: err}
	}
	if err := resp.Err(); err != nil {
		return nil, &FetchError{Err: err}
	}

	var doc Document
	if err := resp.DecodeData(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}
	if !doc.Valid() {
		return nil, ErrMalformedSchema
	}

	idx, err := BuildIndex(&doc)
	if err != nil {
		return nil, err
	}
	c.index = idx
	c.log.Info("schema fetched", "types", idx.Len())

	if c.store != nil {
		if err := c.store.Write(&doc); err != nil {
			c.log.Warn("schema cache write failed", "path", c.store.Path(), "err", err)
		}
	}
	return &doc, nil
}

// ClearCache drops the in-memory index and the persisted artifact. The
// next Load behaves as a cold start.
func (c *Catalog) ClearCache() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index = nil
	if c.store == nil {
		return nil
	}
	return c.store.Clear()
}

// Index returns the resident index, loading the schema first when none
// is resident.
func (c *Catalog) Index(ctx context.Context) (*Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		if _, err := c.loadLocked(ctx, false); err != nil {
			return nil, err
		}
	}
	return c.index, nil
}

// ListTypes returns every type name in the order the introspection
// document declared them. Grouping and sorting are presentation
// concerns left to the caller.
func (c *Catalog) ListTypes(ctx context.Context) ([]string, error) {
	idx, err := c.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.TypeNames(), nil
}

// Type returns the full descriptor for one named type.
func (c *Catalog) Type(ctx context.Context, name string) (*Type, error) {
	idx, err := c.Index(ctx)
	if err != nil {
		return nil, err
	}
	t, ok := idx.Type(name)
	if !ok {
		return nil, idx.unknownType(name)
	}
	return t, nil
}

// TypeFields returns the field descriptors of the named type. A type
// that exists but bears no object fields yields an empty slice rather
// than an error.
func (c *Catalog) TypeFields(ctx context.Context, typeName string) ([]Field, error) {
	idx, err := c.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Fields(typeName)
}

// FieldExists reports whether typeName declares fieldName. It is
// fail-soft: a lookup that fails for any reason, including an
// unloadable schema, reports false rather than an error.
func (c *Catalog) FieldExists(ctx context.Context, typeName, fieldName string) bool {
	fields, err := c.TypeFields(ctx, typeName)
	if err != nil {
		return false
	}
	for _, f := range fields {
		if f.Name == fieldName {
			return true
		}
	}
	return false
}

// SuggestFields proposes near-miss field names for a fieldName that
// failed an existence check on typeName. See Index.SuggestFields for
// ranking rules. An unloadable schema yields no suggestions.
func (c *Catalog) SuggestFields(ctx context.Context, typeName, fieldName string) []string {
	idx, err := c.Index(ctx)
	if err != nil {
		return nil
	}
	return idx.SuggestFields(typeName, fieldName)
}
