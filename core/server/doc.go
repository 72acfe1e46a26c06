// Package server holds the HTTP server configuration.
//
// The serve command uses it to listen for bind requests, size-limit request
// bodies and decide whether the API key middleware is active.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
