// Package server holds the HTTP server configuration.
//
// The serve command exposes audit snapshots over HTTP; this package defines
// the listen port and the optional API key guarding those endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to validate them before listening.
package server
