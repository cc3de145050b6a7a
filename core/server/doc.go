// Package server holds the HTTP server configuration used by the serve command.
package server
