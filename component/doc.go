// Package component defines the lifecycle contract for infrastructure
// components (HTTP server, redis, ...) and a registry that starts them in
// registration order and stops them in reverse.
package component
