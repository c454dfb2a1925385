package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/markdown"
)

var defaultCustomerFields = []string{
	"id", "firstName", "lastName", "email", "phone", "numberOfOrders",
	"createdAt", "tags",
}

type browseCustomersArgs struct {
	Query string `json:"query,omitempty" jsonschema:"Shopify search query, e.g. 'email:jane@example.com'"`
	First int    `json:"first,omitempty" jsonschema:"page size, 1-250, default 10"`
	After string `json:"after,omitempty" jsonschema:"cursor from a previous page"`
}

type getCustomerArgs struct {
	ID     string   `json:"id" jsonschema:"customer id, numeric or gid form"`
	Fields []string `json:"fields,omitempty" jsonschema:"Customer fields to return; defaults to a summary set"`
}

type updateCustomerArgs struct {
	ID        string   `json:"id" jsonschema:"customer id, numeric or gid form"`
	Note      string   `json:"note,omitempty" jsonschema:"new customer note"`
	Tags      []string `json:"tags,omitempty" jsonschema:"replacement tag list"`
	Email     string   `json:"email,omitempty" jsonschema:"new email address"`
	FirstName string   `json:"first_name,omitempty" jsonschema:"new first name"`
	LastName  string   `json:"last_name,omitempty" jsonschema:"new last name"`
}

const customerUpdateMutation = `
mutation customerUpdate($input: CustomerInput!) {
	customerUpdate(input: $input) {
		customer { id firstName lastName email tags }
		userErrors { field message }
	}
}`

func registerCustomerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "browse_customers",
		Description: "List customers in the store, optionally filtered by a Shopify search query. Returns a Markdown summary per customer plus a cursor for the next page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args browseCustomersArgs) (*mcp.CallToolResult, any, error) {
		var p page
		q := graphql.Query{
			Root:       "customers",
			Args:       []graphql.Arg{{Name: "query", Type: "String", Value: optional(args.Query)}},
			Fields:     defaultCustomerFields,
			Connection: true,
			First:      clampFirst(args.First),
			After:      args.After,
		}
		if err := runQuery(ctx, deps, q, &p); err != nil {
			return errorResult("browse_customers failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Customers")
		renderPage(b, "Customer", "customers", p)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_customer",
		Description: "Fetch one customer by id. Accepts a bare numeric id or a gid://shopify/Customer/... id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getCustomerArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}
		fields, err := resolveFields(ctx, deps, "Customer", args.Fields, defaultCustomerFields)
		if err != nil {
			return errorResult("%v", err), nil, nil
		}

		var node map[string]any
		q := graphql.Query{
			Root:   "customer",
			Args:   []graphql.Arg{{Name: "id", Type: "ID!", Value: gid("Customer", args.ID)}},
			Fields: fields,
		}
		if err := runQuery(ctx, deps, q, &node); err != nil {
			return errorResult("get_customer failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Customer")
		renderNode(b, node)
		return textResult(b.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_customer",
		Description: "Update a customer's note, tags, email, or name. Only the supplied fields change.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args updateCustomerArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return errorResult("id is required"), nil, nil
		}

		input := map[string]any{"id": gid("Customer", args.ID)}
		if args.Note != "" {
			input["note"] = args.Note
		}
		if args.Tags != nil {
			input["tags"] = args.Tags
		}
		if args.Email != "" {
			input["email"] = args.Email
		}
		if args.FirstName != "" {
			input["firstName"] = args.FirstName
		}
		if args.LastName != "" {
			input["lastName"] = args.LastName
		}
		if len(input) == 1 {
			return errorResult("nothing to update: supply note, tags, email, first_name, or last_name"), nil, nil
		}

		var result struct {
			Customer map[string]any `json:"customer"`
		}
		err := runMutation(ctx, deps, customerUpdateMutation,
			map[string]any{"input": input}, "customerUpdate", &result)
		if err != nil {
			return errorResult("update_customer failed: %v", err), nil, nil
		}

		b := markdown.NewBuilder()
		b.Heading(2, "Customer updated")
		renderNode(b, result.Customer)
		return textResult(b.String()), nil, nil
	})
}
