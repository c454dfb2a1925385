package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/markdown"
)

type runGraphQLArgs struct {
	Query          string         `json:"query" jsonschema:"GraphQL query or mutation text"`
	Variables      map[string]any `json:"variables,omitempty" jsonschema:"variable bindings for the query"`
	AllowMutations bool           `json:"allow_mutations,omitempty" jsonschema:"must be true to run a mutation"`
}

func registerGraphQLTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_graphql",
		Description: "Run an arbitrary Admin GraphQL query against the store and return the JSON response. Mutations are refused unless allow_mutations is true.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args runGraphQLArgs) (*mcp.CallToolResult, any, error) {
		query := strings.TrimSpace(args.Query)
		if query == "" {
			return errorResult("query is required"), nil, nil
		}
		if isMutation(query) && !args.AllowMutations {
			return errorResult("query is a mutation; set allow_mutations to true to run it"), nil, nil
		}

		resp, err := deps.Exec.Execute(ctx, query, args.Variables)
		if err != nil {
			return errorResult("run_graphql failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "GraphQL result")
		if len(resp.Errors) > 0 {
			b.Heading(3, "Errors")
			for _, e := range resp.Errors {
				b.Item(e.Message)
			}
			b.Blank()
		}
		if len(resp.Data) > 0 && string(resp.Data) != "null" {
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, resp.Data, "", "  "); err != nil {
				pretty.Reset()
				pretty.Write(resp.Data)
			}
			b.Code("json", markdown.Truncate(pretty.String(), maxRawJSON))
		}

		result := textResult(b.String())
		result.IsError = len(resp.Data) == 0 && len(resp.Errors) > 0
		return result, nil, nil
	})
}

// isMutation reports whether the operation text starts a mutation,
// ignoring leading comments.
func isMutation(query string) bool {
	for _, line := range strings.Split(query, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.HasPrefix(line, "mutation")
	}
	return false
}
