package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
)

var defaultInventoryFields = []string{
	"id", "sku", "tracked", "createdAt", "updatedAt",
	"variant { id title product { id title } }",
}

type browseInventoryArgs struct {
	Query string `json:"query,omitempty" jsonschema:"inventory item search query, e.g. 'sku:ABC-123'"`
	First int    `json:"first,omitempty" jsonschema:"page size, 1-250, default 10"`
	After string `json:"after,omitempty" jsonschema:"cursor from a previous page"`
}

type getInventoryItemArgs struct {
	ID string `json:"id" jsonschema:"inventory item id, numeric or gid form"`
}

type updateInventoryQuantityArgs struct {
	InventoryItemID string `json:"inventory_item_id" jsonschema:"inventory item id, numeric or gid form"`
	LocationID      string `json:"location_id" jsonschema:"location id, numeric or gid form"`
	Delta           int    `json:"delta" jsonschema:"quantity change, positive or negative"`
	Reason          string `json:"reason,omitempty" jsonschema:"adjustment reason, default 'correction'"`
}

const inventoryAdjustMutation = `
mutation inventoryAdjustQuantities($input: InventoryAdjustQuantitiesInput!) {
	inventoryAdjustQuantities(input: $input) {
		inventoryAdjustmentGroup {
			reason
			changes { name delta quantityAfterChange }
		}
		userErrors { field message }
	}
}`

func registerInventoryTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_inventory",
		Description: "List inventory items, optionally filtered by a search query such as 'sku:ABC-123'. Returns a Markdown summary per item plus a cursor for the next page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args browseInventoryArgs) (*mcp.CallToolResult, any, error) {
		var p page
		q := graphql.Query{
			Root:       "inventoryItems",
			Args:       []graphql.Arg{{Name: "query", Type: "String", Value: optional(args.Query)}},
			Fields:     defaultInventoryFields,
			Connection: true,
			First:      clampFirst(args.First),
			After:      args.After,
		}
		if err := runQuery(ctx, deps, q, &p); err != nil {
			return errorResult("browse_inventory failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Inventory items")
		renderPage(b, "Item", "inventory items", p)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_inventory_item",
		Description: "Fetch one inventory item by id, including its per-location quantities.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getInventoryItemArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}

		var node map[string]any
		q := graphql.Query{
			Root: "inventoryItem",
			Args: []graphql.Arg{{Name: "id", Type: "ID!", Value: gid("InventoryItem", args.ID)}},
			Fields: append(defaultInventoryFields,
				"inventoryLevels(first: 10) { edges { node { location { id name } quantities(names: [\"available\"]) { name quantity } } } }"),
		}
		if err := runQuery(ctx, deps, q, &node); err != nil {
			return errorResult("get_inventory_item failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Inventory item")
		renderNode(b, node)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_inventory_quantity",
		Description: "Adjust the available quantity of an inventory item at a location by a signed delta.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args updateInventoryQuantityArgs) (*mcp.CallToolResult, any, error) {
		if args.InventoryItemID == "" || args.LocationID == "" {
			return errorResult("inventory_item_id and location_id are required"), nil, nil
		}
		if args.Delta == 0 {
			return errorResult("delta must be non-zero"), nil, nil
		}
		reason := args.Reason
		if reason == "" {
			reason = "correction"
		}

		input := map[string]any{
			"reason": reason,
			"name":   "available",
			"changes": []map[string]any{{
				"inventoryItemId": gid("InventoryItem", args.InventoryItemID),
				"locationId":      gid("Location", args.LocationID),
				"delta":           args.Delta,
			}},
		}

		var result struct {
			InventoryAdjustmentGroup map[string]any `json:"inventoryAdjustmentGroup"`
		}
		err := runMutation(ctx, deps, inventoryAdjustMutation,
			map[string]any{"input": input}, "inventoryAdjustQuantities", &result)
		if err != nil {
			return errorResult("update_inventory_quantity failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Inventory adjusted")
		renderNode(b, result.InventoryAdjustmentGroup)
		return textResult(b.String()), nil, nil
	})
}
