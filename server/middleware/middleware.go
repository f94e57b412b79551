// Package middleware provides the Gin middleware stack for the pulse HTTP
// server: panic recovery, request IDs, CORS, and request logging.
package middleware
