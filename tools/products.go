package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
)

// defaultProductFields is the selection browse_products and get_product
// use when the caller does not pick fields.
var defaultProductFields = []string{
	"id", "title", "handle", "status", "vendor", "productType", "tags",
	"createdAt", "updatedAt",
}

type browseProductsArgs struct {
	Query  string   `json:"query,omitempty" jsonschema:"Shopify search query, e.g. 'status:active vendor:Acme'"`
	First  int      `json:"first,omitempty" jsonschema:"page size, 1-250, default 10"`
	After  string   `json:"after,omitempty" jsonschema:"cursor from a previous page"`
	Fields []string `json:"fields,omitempty" jsonschema:"Product fields to return; defaults to a summary set"`
}

type getProductArgs struct {
	ID     string   `json:"id" jsonschema:"product id, numeric or gid form"`
	Fields []string `json:"fields,omitempty" jsonschema:"Product fields to return; defaults to a summary set"`
}

type updateProductArgs struct {
	ID              string   `json:"id" jsonschema:"product id, numeric or gid form"`
	Title           string   `json:"title,omitempty" jsonschema:"new product title"`
	DescriptionHTML string   `json:"description_html,omitempty" jsonschema:"new product description as HTML"`
	Status          string   `json:"status,omitempty" jsonschema:"new status: ACTIVE, ARCHIVED, or DRAFT"`
	Tags            []string `json:"tags,omitempty" jsonschema:"replacement tag list"`
}

const productUpdateMutation = `
mutation productUpdate($input: ProductInput!) {
	productUpdate(input: $input) {
		product { id title status }
		userErrors { field message }
	}
}`

func registerProductTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_products",
		Description: "List products in the store, optionally filtered by a Shopify search query. Returns a Markdown summary per product plus a cursor for the next page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args browseProductsArgs) (*mcp.CallToolResult, any, error) {
		fields, err := resolveFields(ctx, deps, "Product", args.Fields, defaultProductFields)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}

		var p page
		q := graphql.Query{
			Root:       "products",
			Args:       []graphql.Arg{{Name: "query", Type: "String", Value: optional(args.Query)}},
			Fields:     fields,
			Connection: true,
			First:      clampFirst(args.First),
			After:      args.After,
		}
		if err := runQuery(ctx, deps, q, &p); err != nil {
			return errorResult("browse_products failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Products")
		renderPage(b, "Product", "products", p)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_product",
		Description: "Fetch one product by id. Accepts a bare numeric id or a gid://shopify/Product/... id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getProductArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}
		fields, err := resolveFields(ctx, deps, "Product", args.Fields, defaultProductFields)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}

		var node map[string]any
		q := graphql.Query{
			Root:   "product",
			Args:   []graphql.Arg{{Name: "id", Type: "ID!", Value: gid("Product", args.ID)}},
			Fields: fields,
		}
		if err := runQuery(ctx, deps, q, &node); err != nil {
			return errorResult("get_product failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Product")
		renderNode(b, node)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_product",
		Description: "Update a product's title, description, status, or tags. Only the supplied fields change.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args updateProductArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}

		input := map[string]any{"id": gid("Product", args.ID)}
		if args.Title != "" {
			input["title"] = args.Title
		}
		if args.DescriptionHTML != "" {
			input["descriptionHtml"] = args.DescriptionHTML
		}
		if args.Status != "" {
			input["status"] = strings.ToUpper(args.Status)
		}
		if args.Tags != nil {
			input["tags"] = args.Tags
		}
		if len(input) == 1 {
			return errorResult("nothing to update: supply title, description_html, status, or tags"), nil, nil
		}

		var result struct {
			Product map[string]any `json:"product"`
		}
		err := runMutation(ctx, deps, productUpdateMutation,
			map[string]any{"input": input}, "productUpdate", &result)
		if err != nil {
			return errorResult("update_product failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Product updated")
		renderNode(b, result.Product)
		return textResult(b.String()), nil, nil
	})
}

// optional returns nil for an empty string so the query builder omits
// the argument entirely.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
