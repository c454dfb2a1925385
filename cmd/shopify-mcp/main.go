// Command shopify-mcp serves Shopify Admin API tools over the Model
// Context Protocol.
//
// Configuration comes from SHOPIFY_* environment variables (a .env
// file in the working directory is loaded first) and an optional YAML
// config file. The default transport is stdio; --transport http serves
// the streamable MCP endpoint on --addr instead.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/admingraph/shopify-mcp/config"
	"github.com/admingraph/shopify-mcp/graphql"
	"github.com/admingraph/shopify-mcp/schema"
	"github.com/admingraph/shopify-mcp/search"
	"github.com/admingraph/shopify-mcp/server"
	"github.com/admingraph/shopify-mcp/tools"
)

// version is stamped at build time with -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "shopify-mcp:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		transport     = pflag.String("transport", "stdio", "transport to serve on: stdio or http")
		addr          = pflag.String("addr", ":8080", "listen address for --transport http")
		configPath    = pflag.String("config", "", "path to an optional YAML config file")
		cacheDir      = pflag.String("cache-dir", "", "directory for the schema cache file")
		refreshSchema = pflag.Bool("refresh-schema", false, "fetch a fresh schema at startup, bypassing caches")
		logLevel      = pflag.String("log-level", "info", "log level: debug, info, warn, or error")
	)
	pflag.Parse()

	// Stdout carries the MCP protocol in stdio mode; everything else
	// goes to stderr.
	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", "err", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := graphql.NewAdminClient(cfg.StoreDomain, cfg.AccessToken, cfg.Version())
	if err != nil {
		return err
	}

	store := schema.NewStore(schema.DefaultCachePath(cfg.CacheDir, cfg.StoreDomain), logger)
	catalog := schema.NewCatalog(schema.Options{
		Executor: client,
		Store:    store,
		Logger:   logger,
	})
	searcher := search.NewSearcher(search.Config{})
	defer func() {
		if err := searcher.Close(); err != nil {
			logger.Warn("searcher close failed", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *refreshSchema {
		if _, err := catalog.Load(ctx, true); err != nil {
			return fmt.Errorf("refresh schema: %w", err)
		}
	}

	srv := server.New(server.Options{
		Version: version,
		Deps: tools.Deps{
			Exec:    client,
			Catalog: catalog,
			Search:  searcher,
			Log:     logger,
		},
		Logger: logger,
	})

	switch *transport {
	case "stdio":
		return srv.Run(ctx)
	case "http":
		return srv.ListenAndServe(ctx, *addr)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", *transport)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
