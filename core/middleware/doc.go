// Package middleware groups the fiber middleware used by the serve command.
//
//   - auth: X-API-Key validation.
//   - rayid: per request id stored in locals and echoed in X-Ray-ID.
package middleware
