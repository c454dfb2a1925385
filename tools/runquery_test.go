package tools

import (
	"strings"
	"testing"

	"github.com/admingraph/shopify-mcp/graphql"
)

func TestRunGraphQL(t *testing.T) {
	deps := newTestDeps(t, func(query string, vars map[string]any) (*graphql.Response, error) {
		if vars["handle"] != "blue-mug" {
			t.Errorf("expected variables forwarded, got %v", vars)
		}
		return dataResponse(t, map[string]any{
			"shop": map[string]any{"name": "Demo Store"},
		}), nil
	})
	session := newSession(t, deps)

	text, isError := callTool(t, session, "run_graphql", map[string]any{
		"query":     "query ($handle: String) { shop { name } }",
		"variables": map[string]any{"handle": "blue-mug"},
	})

	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}
	if !strings.Contains(text, "```json") {
		t.Errorf("expected fenced JSON in output:\n%s", text)
	}
	if !strings.Contains(text, "Demo Store") {
		t.Errorf("expected response data in output:\n%s", text)
	}
}

func TestRunGraphQL_MutationBlocked(t *testing.T) {
	deps := newTestDeps(t, func(query string, vars map[string]any) (*graphql.Response, error) {
		t.Errorf("mutation should not have been sent: %s", query)
		return &graphql.Response{}, nil
	})
	session := newSession(t, deps)

	text, isError := callTool(t, session, "run_graphql", map[string]any{
		"query": "mutation { productDelete(input: {id: \"gid://shopify/Product/1\"}) { deletedProductId } }",
	})

	if !isError {
		t.Fatalf("expected error result, got: %s", text)
	}
	if !strings.Contains(text, "allow_mutations") {
		t.Errorf("expected guard hint in output: %s", text)
	}
}

func TestRunGraphQL_MutationAllowed(t *testing.T) {
	deps := newTestDeps(t, func(query string, vars map[string]any) (*graphql.Response, error) {
		return dataResponse(t, map[string]any{
			"productDelete": map[string]any{"deletedProductId": "gid://shopify/Product/1"},
		}), nil
	})
	session := newSession(t, deps)

	text, isError := callTool(t, session, "run_graphql", map[string]any{
		"query":           "mutation { productDelete(input: {id: \"gid://shopify/Product/1\"}) { deletedProductId } }",
		"allow_mutations": true,
	})

	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}
	if !strings.Contains(text, "deletedProductId") {
		t.Errorf("expected mutation result in output:\n%s", text)
	}
}

func TestRunGraphQL_GraphQLErrors(t *testing.T) {
	deps := newTestDeps(t, func(query string, vars map[string]any) (*graphql.Response, error) {
		return &graphql.Response{
			Errors: []graphql.ResponseError{{Message: "Field 'shoop' doesn't exist on type 'QueryRoot'"}},
		}, nil
	})
	session := newSession(t, deps)

	text, isError := callTool(t, session, "run_graphql", map[string]any{
		"query": "query { shoop { name } }",
	})

	if !isError {
		t.Fatalf("expected error result for data-less error response, got: %s", text)
	}
	if !strings.Contains(text, "shoop") {
		t.Errorf("expected error message in output: %s", text)
	}
}
