package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
)

var defaultOrderFields = []string{
	"id", "name", "email", "createdAt", "displayFinancialStatus",
	"displayFulfillmentStatus", "totalPriceSet { shopMoney { amount currencyCode } }",
	"tags",
}

type browseOrdersArgs struct {
	Query  string   `json:"query,omitempty" jsonschema:"Shopify search query, e.g. 'financial_status:paid created_at:>2026-01-01'"`
	First  int      `json:"first,omitempty" jsonschema:"page size, 1-250, default 10"`
	After  string   `json:"after,omitempty" jsonschema:"cursor from a previous page"`
	Fields []string `json:"fields,omitempty" jsonschema:"Order fields to return; defaults to a summary set"`
}

type getOrderArgs struct {
	ID     string   `json:"id" jsonschema:"order id, numeric or gid form"`
	Fields []string `json:"fields,omitempty" jsonschema:"Order fields to return; defaults to a summary set"`
}

type updateOrderArgs struct {
	ID    string   `json:"id" jsonschema:"order id, numeric or gid form"`
	Note  string   `json:"note,omitempty" jsonschema:"new order note"`
	Tags  []string `json:"tags,omitempty" jsonschema:"replacement tag list"`
	Email string   `json:"email,omitempty" jsonschema:"new contact email"`
}

const orderUpdateMutation = `
mutation orderUpdate($input: OrderInput!) {
	orderUpdate(input: $input) {
		order { id name email note tags }
		userErrors { field message }
	}
}`

func registerOrderTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_orders",
		Description: "List orders in the store, optionally filtered by a Shopify search query. Returns a Markdown summary per order plus a cursor for the next page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args browseOrdersArgs) (*mcp.CallToolResult, any, error) {
		fields, err := resolveFields(ctx, deps, "Order", args.Fields, defaultOrderFields)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}

		var p page
		q := graphql.Query{
			Root:       "orders",
			Args:       []graphql.Arg{{Name: "query", Type: "String", Value: optional(args.Query)}},
			Fields:     fields,
			Connection: true,
			First:      clampFirst(args.First),
			After:      args.After,
		}
		if err := runQuery(ctx, deps, q, &p); err != nil {
			return errorResult("browse_orders failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Orders")
		renderPage(b, "Order", "orders", p)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_order",
		Description: "Fetch one order by id. Accepts a bare numeric id or a gid://shopify/Order/... id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getOrderArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}
		fields, err := resolveFields(ctx, deps, "Order", args.Fields, defaultOrderFields)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}

		var node map[string]any
		q := graphql.Query{
			Root:   "order",
			Args:   []graphql.Arg{{Name: "id", Type: "ID!", Value: gid("Order", args.ID)}},
			Fields: fields,
		}
		if err := runQuery(ctx, deps, q, &node); err != nil {
			return errorResult("get_order failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Order")
		renderNode(b, node)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_order",
		Description: "Update an order's note, tags, or contact email. Only the supplied fields change.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args updateOrderArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}

		input := map[string]any{"id": gid("Order", args.ID)}
		if args.Note != "" {
			input["note"] = args.Note
		}
		if args.Tags != nil {
			input["tags"] = args.Tags
		}
		if args.Email != "" {
			input["email"] = args.Email
		}
		if len(input) == 1 {
			return errorResult("nothing to update: supply note, tags, or email"), nil, nil
		}

		var result struct {
			Order map[string]any `json:"order"`
		}
		err := runMutation(ctx, deps, orderUpdateMutation,
			map[string]any{"input": input}, "orderUpdate", &result)
		if err != nil {
			return errorResult("update_order failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Order updated")
		renderNode(b, result.Order)
		return textResult(b.String()), nil, nil
	})
}
