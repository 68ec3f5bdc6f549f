// Package server runs the HTTP transport of the blog API.
//
// It owns the listener lifecycle: startup, reaction to SIGTERM, SIGINT and
// SIGQUIT, and graceful shutdown that lets in-flight requests finish.
package server
