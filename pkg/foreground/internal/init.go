// Package internal contains the shared infrastructure for the foreground
// packages: logging setup and framework-level error types.
// Types and functions in this package are not part of the public API.
package internal
