// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings: the
// listening port, the API key protecting the endpoints, and the request body
// size limit applied to uploads.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command when constructing the Fiber app.
package server
