// Package tools registers the server's MCP tools and implements their
// handlers.
//
// Each tool builds one or more Admin GraphQL requests, executes them
// through the injected [graphql.Executor], and renders the response as
// Markdown. Handlers never return protocol errors for user-level
// failures: a bad id, an unknown field, or a store-side rejection comes
// back as tool output with IsError set, so the calling assistant can
// read and react to it.
//
// # Registration
//
//	deps := tools.Deps{Exec: client, Catalog: catalog, Search: searcher}
//	tools.Register(server, deps)
//
// Tools whose dependencies are absent are skipped rather than
// registered broken: the schema tools need a Catalog, search_schema
// additionally needs a Searcher.
//
// # Field selection
//
// Browse and get tools accept an optional fields list. Names are
// validated against the schema catalog before the query is sent;
// an unknown name is rejected with near-miss suggestions from
// [schema.Catalog.SuggestFields]. When the schema itself cannot be
// loaded, validation is skipped and the store stays the final
// authority.
//
// # IDs
//
// Tools accept both bare numeric ids and full gid://shopify/Kind/id
// ids; bare ids are upgraded before the request is sent.
package tools
