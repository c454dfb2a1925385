// Package schema caches and indexes the GraphQL schema of a Shopify
// Admin endpoint: it fetches the introspection document once, persists
// it as a JSON file, and answers type and field lookups against an
// in-memory index.
//
// It exists to:
//   - Keep tool handlers from re-fetching a multi-megabyte
//     introspection document on every call
//   - Give user-supplied type and field names a cheap validity check
//     with near-miss suggestions for typos
//
// # Usage
//
// The primary type is [Catalog]. Construct one per configured store and
// inject it into every component that needs schema answers:
//
//	store := schema.NewStore(schema.DefaultCachePath("", "demo.myshopify.com"), nil)
//	catalog := schema.NewCatalog(schema.Options{
//	    Executor: client, // a graphql.Executor
//	    Store:    store,
//	})
//
//	types, err := catalog.ListTypes(ctx)
//	fields, err := catalog.TypeFields(ctx, "Product")
//	ok := catalog.FieldExists(ctx, "Product", "title")
//
// # Load Policy
//
// [Catalog.Load] consults, in order: the in-memory index, the persisted
// cache file, the network. Forcing a load skips both caches. Lookup
// methods load lazily on first use, without forcing. [Catalog.ClearCache]
// drops both cache levels, so the next load is a cold start.
//
// # Suggestions
//
// [Catalog.SuggestFields] proposes near-miss field names for a failed
// existence check: Levenshtein candidates within distance 3, closest
// first, capped at 5, with US/UK spelling-variant substitutions
// (canceled/cancelled and similar) ranked ahead of them.
//
// # Failure Modes
//
// A catalog without an executor fails with [ErrNotConfigured] before
// any I/O. Transport and HTTP failures surface as [*FetchError].
// Documents without the __schema container fail with
// [ErrMalformedSchema]; when such a document came from the cache file,
// the file is removed so the next load does not repeat the failure.
// Cache writes are best-effort: a write failure is logged and the
// freshly fetched document still serves the current process. Fetches
// are never retried by this package; retry policy belongs to callers.
//
// # Concurrency
//
// A single mutex serializes loads; the index is immutable once built.
// Concurrent processes sharing one cache file are not protected
// against.
package schema
