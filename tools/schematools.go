package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/markdown"
	"github.com/admingraph/shopify-mcp/schema"
	"github.com/admingraph/shopify-mcp/search"
)

// maxTypesPerGroup bounds how many names introspect_schema lists per
// kind before truncating.
const maxTypesPerGroup = 100

type introspectSchemaArgs struct {
	Filter  string `json:"filter,omitempty" jsonschema:"full-text filter over type and field names"`
	Refresh bool   `json:"refresh,omitempty" jsonschema:"force a fresh introspection fetch, bypassing caches"`
}

type getTypeFieldsArgs struct {
	TypeName string `json:"type_name" jsonschema:"schema type name, e.g. Product"`
}

type searchSchemaArgs struct {
	Term  string `json:"term" jsonschema:"search term matched against type and field names and descriptions"`
	Limit int    `json:"limit,omitempty" jsonschema:"max hits to return, default 10"`
}

func registerSchemaTools(server *mcp.Server, deps Deps) {
	if deps.Catalog == nil {
		return
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "introspect_schema",
		Description: "List the store's GraphQL schema types grouped by kind. An optional filter narrows the listing by full-text search; refresh re-fetches the schema from the store.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args introspectSchemaArgs) (*mcp.CallToolResult, any, error) {
		if args.Refresh {
			if _, err := deps.Catalog.Load(ctx, true); err != nil {
				return errorResult("schema refresh failed: %v", err), nil, nil
			}
		}
		idx, err := deps.Catalog.Index(ctx)
		if err != nil {
			return errorResult("schema load failed: %v", err), nil, nil
		}

		if args.Filter != "" && deps.Search != nil {
			return renderSchemaHits(deps, idx, args.Filter, maxTypesPerGroup)
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Schema types")
		groups := groupTypes(idx)
		for _, g := range groups {
			if len(g.names) == 0 {
				continue
			}
			b.Heading(3, fmt.Sprintf("%s (%d)", g.label, len(g.names)))
			names := g.names
			truncated := false
			if len(names) > maxTypesPerGroup {
				names = names[:maxTypesPerGroup]
				truncated = true
			}
			b.Line(strings.Join(names, ", "))
			if truncated {
				b.Linef("... and %d more; use search_schema or a filter to narrow.", len(g.names)-maxTypesPerGroup)
			}
			b.Blank()
		}
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_type_fields",
		Description: "List the fields of one schema type as a Markdown table with type signatures, arguments, and deprecation notes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getTypeFieldsArgs) (*mcp.CallToolResult, any, error) {
		if args.TypeName == "" {
			return errorResult("type_name is required"), nil, nil
		}

		fields, err := deps.Catalog.TypeFields(ctx, args.TypeName)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Fields of "+args.TypeName)
		if len(fields) == 0 {
			b.Linef("%s has no object fields (it may be an enum, scalar, union, or input type).", args.TypeName)
			return textResult(b.String()), nil, nil
		}

		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			note := markdown.Truncate(f.Description, 120)
			if f.IsDeprecated {
				reason := "deprecated"
				if f.DeprecationReason != nil && *f.DeprecationReason != "" {
					reason = "deprecated: " + *f.DeprecationReason
				}
				if note != "" {
					note = reason + ". " + note
				} else {
					note = reason
				}
			}
			rows = append(rows, []string{f.Name, f.Type.String(), renderArgs(f.Args), note})
		}
		b.Table([]string{"Field", "Type", "Arguments", "Notes"}, rows)
		return textResult(b.String()), nil, nil
	})

	if deps.Search != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "search_schema",
			Description: "Full-text search over schema type and field names and descriptions. Returns ranked matches with their owning types and signatures.",
		}, func(ctx context.Context, req *mcp.CallToolRequest, args searchSchemaArgs) (*mcp.CallToolResult, any, error) {
			if args.Term == "" {
				return errorResult("term is required"), nil, nil
			}
			idx, err := deps.Catalog.Index(ctx)
			if err != nil {
				return errorResult("schema load failed: %v", err), nil, nil
			}
			limit := args.Limit
			if limit <= 0 {
				limit = 10
			}
			return renderSchemaHits(deps, idx, args.Term, limit)
		})
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clear_schema_cache",
		Description: "Drop the cached schema, in memory and on disk. The next schema operation re-fetches from the store.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		if err := deps.Catalog.ClearCache(); err != nil {
			return errorResult("clear_schema_cache failed: %v", err), nil, nil
		}
		return textResult("Schema cache cleared.\n"), nil, nil
	})
}

func renderSchemaHits(deps Deps, idx *schema.Index, term string, limit int) (*mcp.CallToolResult, any, error) {
	hits, err := deps.Search.Search(term, limit, search.DocsFromIndex(idx))
	if err != nil {
		return errorResult("schema search failed: %v", err), nil, nil
	}

	b := markdown.NewBuilder()
	b.Heading(2, fmt.Sprintf("Schema matches for %q", term))
	if len(hits) == 0 {
		b.Line("No matches.")
		return textResult(b.String()), nil, nil
	}

	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		name := h.Name
		if h.Parent != "" {
			name = h.Parent + "." + h.Name
		}
		rows = append(rows, []string{
			name, h.Kind, h.Type, markdown.Truncate(h.Description, 120),
		})
	}
	b.Table([]string{"Name", "Kind", "Type", "Description"}, rows)
	return textResult(b.String()), nil, nil
}

// renderArgs summarizes a field's arguments as name: Type pairs.
func renderArgs(args []schema.InputValue) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + ": " + a.Type.String()
	}
	return strings.Join(parts, ", ")
}

// typeGroup is one display bucket of the schema listing.
type typeGroup struct {
	label string
	names []string
}

// groupTypes buckets the schema's types for display: objects split into
// plain objects, connections, and edges, then the remaining kinds.
// Introspection meta-types are skipped. Grouping is presentation only;
// the index itself stays in declaration order.
func groupTypes(idx *schema.Index) []typeGroup {
	groups := []typeGroup{
		{label: "Objects"},
		{label: "Connections"},
		{label: "Edges"},
		{label: "Interfaces"},
		{label: "Unions"},
		{label: "Enums"},
		{label: "Input objects"},
		{label: "Scalars"},
	}

	for _, name := range idx.TypeNames() {
		if strings.HasPrefix(name, "__") {
			continue
		}
		t, ok := idx.Type(name)
		if !ok {
			continue
		}
		var bucket int
		switch t.Kind {
		case schema.KindObject:
			switch {
			case strings.HasSuffix(name, "Connection"):
				bucket = 1
			case strings.HasSuffix(name, "Edge"):
				bucket = 2
			default:
				bucket = 0
			}
		case schema.KindInterface:
			bucket = 3
		case schema.KindUnion:
			bucket = 4
		case schema.KindEnum:
			bucket = 5
		case schema.KindInputObject:
			bucket = 6
		default:
			bucket = 7
		}
		groups[bucket].names = append(groups[bucket].names, name)
	}
	return groups
}
