package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
)

var defaultCheckoutFields = []string{
	"id", "name", "abandonedCheckoutUrl", "createdAt", "completedAt",
	"totalPriceSet { shopMoney { amount currencyCode } }",
	"customer { id email firstName lastName }",
}

type browseAbandonedCheckoutsArgs struct {
	Query string `json:"query,omitempty" jsonschema:"abandoned checkout search query"`
	First int    `json:"first,omitempty" jsonschema:"page size, 1-250, default 10"`
	After string `json:"after,omitempty" jsonschema:"cursor from a previous page"`
}

type getAbandonmentArgs struct {
	ID string `json:"id" jsonschema:"abandonment id, numeric or gid form"`
}

func registerAbandonmentTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_abandoned_checkouts",
		Description: "List abandoned checkouts with their recovery URLs and totals. Returns a Markdown summary per checkout plus a cursor for the next page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args browseAbandonedCheckoutsArgs) (*mcp.CallToolResult, any, error) {
		var p page
		q := graphql.Query{
			Root:       "abandonedCheckouts",
			Args:       []graphql.Arg{{Name: "query", Type: "String", Value: optional(args.Query)}},
			Fields:     defaultCheckoutFields,
			Connection: true,
			First:      clampFirst(args.First),
			After:      args.After,
		}
		if err := runQuery(ctx, deps, q, &p); err != nil {
			return errorResult("browse_abandoned_checkouts failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Abandoned checkouts")
		renderPage(b, "Checkout", "abandoned checkouts", p)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_abandonment",
		Description: "Fetch one abandonment record by id, including its visit and email state.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getAbandonmentArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}

		var node map[string]any
		q := graphql.Query{
			Root: "abandonment",
			Args: []graphql.Arg{{Name: "id", Type: "ID!", Value: gid("Abandonment", args.ID)}},
			Fields: []string{
				"id", "abandonmentType", "createdAt", "emailState",
				"daysSinceLastAbandonmentEmail", "hoursSinceLastAbandonedCheckout",
				"customer { id email firstName lastName }",
				"abandonedCheckoutPayload { id abandonedCheckoutUrl }",
			},
		}
		if err := runQuery(ctx, deps, q, &node); err != nil {
			return errorResult("get_abandonment failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Abandonment")
		renderNode(b, node)
		return textResult(b.String()), nil, nil
	})
}
