package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/schema"
	"github.com/admingraph/shopify-mcp/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	exec := graphql.ExecutorFunc(func(ctx context.Context, query string, vars map[string]any) (*graphql.Response, error) {
		return &graphql.Response{}, nil
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Options{
		Version: "test",
		Deps: tools.Deps{
			Exec:    exec,
			Catalog: schema.NewCatalog(schema.Options{Executor: exec, Logger: logger}),
			Log:     logger,
		},
		Logger: logger,
	})
}

func TestNew_RegistersTools(t *testing.T) {
	srv := newTestServer(t)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ctx := context.Background()

	serverSession, err := srv.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	defer func() { _ = clientSession.Close() }()

	res, err := clientSession.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}

	names := make(map[string]bool, len(res.Tools))
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"browse_products", "get_product", "update_product",
		"browse_inventory", "get_inventory_item", "update_inventory_quantity",
		"browse_orders", "get_order", "update_order",
		"browse_customers", "get_customer", "update_customer",
		"get_product_media",
		"browse_abandoned_checkouts", "get_abandonment",
		"run_graphql",
		"introspect_schema", "get_type_fields", "clear_schema_cache",
	} {
		if !names[want] {
			t.Errorf("expected tool %s registered", want)
		}
	}
}

func TestHandler_Healthz(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("expected ok body, got %q", body)
	}
}

func TestHandler_StreamableMCP(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: ts.URL + "/mcp",
	}, nil)
	if err != nil {
		t.Fatalf("streamable connect failed: %v", err)
	}
	defer func() { _ = session.Close() }()

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools over HTTP failed: %v", err)
	}
	if len(res.Tools) == 0 {
		t.Fatal("expected tools listed over HTTP transport")
	}
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx, "127.0.0.1:0")
	}()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
