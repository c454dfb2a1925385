package tools

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
)

type getProductMediaArgs struct {
	ProductID string `json:"product_id" jsonschema:"product id, numeric or gid form"`
	First     int    `json:"first,omitempty" jsonschema:"how many media entries to return, default 10"`
}

func registerMediaTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_product_media",
		Description: "List a product's media (images, videos, 3d models) with their status and preview URLs.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getProductMediaArgs) (*mcp.CallToolResult, any, error) {
		if args.ProductID == "" {
			return errorResult("product_id is required"), nil, nil
		}

		first := clampFirst(args.First)
		var node struct {
			Title string `json:"title"`
			Media page   `json:"media"`
		}
		q := graphql.Query{
			Root: "product",
			Args: []graphql.Arg{{Name: "id", Type: "ID!", Value: gid("Product", args.ProductID)}},
			Fields: []string{
				"title",
				"media(first: " + strconv.Itoa(first) + ") { edges { node { id alt mediaContentType status preview { image { url } } } cursor } pageInfo { hasNextPage endCursor } }",
			},
		}
		if err := runQuery(ctx, deps, q, &node); err != nil {
			return errorResult("get_product_media failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Media for "+node.Title)
		renderPage(b, "Media", "media entries", node.Media)
		return textResult(b.String()), nil, nil
	})
}
