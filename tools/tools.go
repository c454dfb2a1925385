package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
	"github.com/admingraph/shopify-mcp/schema"
	"github.com/admingraph/shopify-mcp/search"
)

const (
	// maxPageSize caps connection page sizes at the Admin API limit.
	maxPageSize = 250

	// maxRawJSON caps how much raw JSON a tool echoes back to the
	// client before truncation.
	maxRawJSON = 20000
)

// Deps carries the capabilities every tool handler may need. One Deps
// value is built at startup and shared by all registered tools.
type Deps struct {
	// Exec performs GraphQL requests against the store. Required.
	Exec graphql.Executor

	// Catalog answers schema lookups and powers field validation.
	// Required for the schema tools; browse tools degrade to
	// unvalidated field selection without it.
	Catalog *schema.Catalog

	// Search ranks schema types and fields for search_schema. Nil
	// disables the search tools.
	Search *search.Searcher

	// Log receives handler diagnostics. Nil falls back to
	// slog.Default().
	Log *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}

// Register adds every tool to the server. Tools whose dependencies are
// absent (for example search without a Searcher) are skipped.
func Register(server *mcp.Server, deps Deps) {
	registerProductTools(server, deps)
	registerInventoryTools(server, deps)
	registerOrderTools(server, deps)
	registerCustomerTools(server, deps)
	registerMediaTools(server, deps)
	registerAbandonmentTools(server, deps)
	registerGraphQLTools(server, deps)
	registerSchemaTools(server, deps)
}

// ---- Results ----------------------------------------------------------

// textResult wraps Markdown text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps a user-level failure: the text travels back as tool
// output with IsError set, never as a protocol error.
func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// ---- IDs --------------------------------------------------------------

// gid upgrades a bare numeric id to the gid://shopify/<kind>/<id> form.
// Ids already in gid form pass through unchanged.
func gid(kind, id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return "gid://shopify/" + kind + "/" + id
}

// ---- Pagination -------------------------------------------------------

// clampFirst bounds a requested page size to 1..maxPageSize, using the
// builder default when unset.
func clampFirst(first int) int {
	if first <= 0 {
		return graphql.DefaultPageSize
	}
	if first > maxPageSize {
		return maxPageSize
	}
	return first
}

// ---- Field selection --------------------------------------------------

// resolveFields returns the fields a browse/get tool should select:
// the caller's list when given, else the tool's defaults. Caller-given
// names are validated against the schema catalog; an unknown name is
// rejected with near-miss suggestions. Validation is skipped when the
// schema itself cannot be loaded, since the store remains the final
// authority on the query.
func resolveFields(ctx context.Context, deps Deps, typeName string, requested, defaults []string) ([]string, error) {
	if len(requested) == 0 {
		return defaults, nil
	}
	if deps.Catalog == nil {
		return requested, nil
	}

	if _, err := deps.Catalog.TypeFields(ctx, typeName); err != nil {
		var unknown *schema.UnknownTypeError
		if errors.As(err, &unknown) {
			return nil, err
		}
		// Schema unavailable: let the store validate.
		deps.logger().Debug("field validation skipped", "type", typeName, "err", err)
		return requested, nil
	}

	for _, f := range requested {
		if deps.Catalog.FieldExists(ctx, typeName, f) {
			continue
		}
		msg := fmt.Sprintf("field %q does not exist on %s", f, typeName)
		if suggestions := deps.Catalog.SuggestFields(ctx, typeName, f); len(suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return requested, nil
}

// ---- Query execution --------------------------------------------------

// page is a decoded relay connection: the nodes, their cursors, and the
// pagination tail.
type page struct {
	Edges []struct {
		Node   map[string]any `json:"node"`
		Cursor string         `json:"cursor"`
	} `json:"edges"`
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

// runQuery executes q and decodes the root field's payload into out.
func runQuery(ctx context.Context, deps Deps, q graphql.Query, out any) error {
	query, vars := q.Build()
	resp, err := deps.Exec.Execute(ctx, query, vars)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	var payload map[string]json.RawMessage
	if err := resp.DecodeData(&payload); err != nil {
		return err
	}
	raw, ok := payload[q.Root]
	if !ok || string(raw) == "null" {
		return fmt.Errorf("no %s in response", q.Root)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", q.Root, err)
	}
	return nil
}

// runMutation executes a hand-written mutation and decodes the named
// root payload, folding Shopify userErrors into the returned error.
func runMutation(ctx context.Context, deps Deps, mutation string, vars map[string]any, root string, out any) error {
	resp, err := deps.Exec.Execute(ctx, mutation, vars)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	var payload map[string]json.RawMessage
	if err := resp.DecodeData(&payload); err != nil {
		return err
	}
	raw, ok := payload[root]
	if !ok || string(raw) == "null" {
		return fmt.Errorf("no %s in response", root)
	}

	var envelope struct {
		UserErrors []struct {
			Field   []string `json:"field"`
			Message string   `json:"message"`
		} `json:"userErrors"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.UserErrors) > 0 {
		msgs := make([]string, len(envelope.UserErrors))
		for i, ue := range envelope.UserErrors {
			if len(ue.Field) > 0 {
				msgs[i] = strings.Join(ue.Field, ".") + ": " + ue.Message
			} else {
				msgs[i] = ue.Message
			}
		}
		return fmt.Errorf("store rejected the change: %s", strings.Join(msgs, "; "))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s: %w", root, err)
		}
	}
	return nil
}

// ---- Rendering --------------------------------------------------------

// renderNode writes one object's fields as bold key/value lines, keys
// sorted for stable output. Nested objects and lists render as compact
// JSON.
func renderNode(b *markdown.Builder, node map[string]any) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.Field(k, renderValue(node[k]))
	}
}

// renderValue flattens a decoded JSON value to one display string.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}

// renderPage writes a connection page: a heading per node, then the
// pagination tail so clients can continue with after. singular and
// plural name the listed noun, e.g. "Product", "products".
func renderPage(b *markdown.Builder, singular, plural string, p page) {
	if len(p.Edges) == 0 {
		b.Line("No " + plural + " found.")
		return
	}
	for i, edge := range p.Edges {
		b.Heading(3, fmt.Sprintf("%s %d", singular, i+1))
		renderNode(b, edge.Node)
		b.Blank()
	}
	b.Linef("%d %s shown.", len(p.Edges), plural)
	if p.PageInfo.HasNextPage {
		b.Field("Next page cursor", p.PageInfo.EndCursor)
	}
}
