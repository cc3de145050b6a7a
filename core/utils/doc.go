// Package utils holds small string helpers shared by the CLI, the HTTP handlers
// and civilization name resolution.
package utils
