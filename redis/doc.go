// Package redis provides a Redis client wrapper built on go-redis with
// pulse logging and component lifecycle support. A failure to bring the
// client into a usable state surfaces as the taxonomy's
// CLIENT_INITIALIZATION_ERROR.
package redis
