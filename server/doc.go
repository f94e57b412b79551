// Package server provides the pulse HTTP server built on Gin with HTTP/2
// cleartext (h2c) support, a standard middleware stack, and the built-in
// probe endpoints.
//
// The server follows the component pattern: wrap it in a ServerComponent and
// register it with the component registry for lifecycle management.
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /ping: liveness probe with uptime and timestamp
//   - /health: minimal readiness probe
//   - /status: aggregated component health
//   - /version: build version information
//
// # Error rendering
//
// RespondWithError is the single translation point from an error value to a
// client-visible payload. It depends only on the base CoreError contract, so
// new error variants render without any server changes.
package server
