// Package server assembles the MCP server and runs it over a
// transport.
//
// [New] builds the SDK server, registers the full tool surface from
// the tools package, and returns a [Server] that can run two ways:
//
//   - [Server.Run] — stdio, the standard MCP launch mode. Stdout
//     carries the protocol, so all logging goes to stderr.
//   - [Server.ListenAndServe] — HTTP, exposing the streamable MCP
//     endpoint at /mcp and a liveness probe at /healthz, with graceful
//     shutdown on context cancellation.
//
// The server itself holds no domain state; everything the tools need
// arrives through [tools.Deps] built by the binary at startup.
package server
