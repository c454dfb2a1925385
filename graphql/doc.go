// Package graphql provides the GraphQL execution layer for the Shopify
// Admin API: a narrow executor capability, an HTTP client implementing
// it, and a small typed query builder.
//
// It exists to:
//   - Keep tool handlers decoupled from HTTP details behind [Executor]
//   - Make request results a tagged value ([Response] with Data or
//     Errors) rather than a thrown transport error
//   - Replace string-templated query assembly with a typed builder that
//     states pagination intent explicitly
//
// # Usage
//
// Construct a client for a store and execute queries through the
// [Executor] interface:
//
//	client, err := graphql.NewAdminClient("demo.myshopify.com", token, "2025-07")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Execute(ctx, `query { shop { name } }`, nil)
//	if err != nil {
//	    log.Fatal(err) // transport or HTTP failure
//	}
//	if err := resp.Err(); err != nil {
//	    log.Fatal(err) // GraphQL-level errors
//	}
//
// # Query Building
//
// [Query] renders a single root-field selection with variable bindings.
// Connection pagination is an explicit flag, never inferred from type
// names:
//
//	q := graphql.Query{
//	    Root:       "products",
//	    Args:       []graphql.Arg{{Name: "query", Type: "String", Value: "status:active"}},
//	    Fields:     []string{"id", "title"},
//	    Connection: true,
//	    First:      10,
//	}
//	text, vars := q.Build()
//
// # Testing
//
// [ExecutorFunc] adapts a plain function to [Executor] so tests can
// stub responses without a network.
package graphql
