// Package search provides full-text search over an introspected GraphQL
// schema, backed by an in-memory Bleve index.
//
// It exists to:
//   - Let tool callers find types and fields in a schema with tens of
//     thousands of entries without scrolling a full listing
//   - Keep the schema package dependency-light; only consumers that
//     want ranked search pay for the index
//
// # Usage
//
// The primary type is [Searcher]. Flatten a schema index into docs and
// search them:
//
//	searcher := search.NewSearcher(search.Config{})
//	defer searcher.Close()
//
//	docs := search.DocsFromIndex(schemaIndex)
//	hits, err := searcher.Search("inventory quantity", 10, docs)
//
// # Configuration
//
// [Config] allows customization of ranking and safety limits:
//
//	cfg := search.Config{
//	    NameBoost:     3,    // Boost name matches (default: 3)
//	    MaxDocs:       0,    // Limit documents to index (0 = unlimited)
//	    MaxDocTextLen: 5000, // Truncate long descriptions (0 = unlimited)
//	}
//
// # Thread Safety
//
// Searcher is safe for concurrent use. It caches the Bleve index keyed
// by a fingerprint of the document set, rebuilding only when the schema
// changes.
//
// # Behavior
//
// Empty queries return the first N documents in input order. Non-empty
// queries rank with deterministic tie-breaking (score DESC, then ID
// ASC).
package search
