// Package errors provides the structured error model used across the pulse
// API surface. It defines a closed registry of stable error codes, a base
// CoreError type carrying {code, message, details}, and variant constructors
// that pre-fill code and message for specific failure scenarios.
//
// Variants are plain constructor functions returning *CoreError, so any
// consumer of the base type handles every variant without type switching.
// Foreign errors are always normalized to a string before being stored as
// details; a CoreError never holds a live reference to another error.
package errors
