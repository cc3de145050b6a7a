// Package integrity checks that the infrastructure sync depends on is in place.
//
// # Checks Provided
//
//   - Schema: compares the civilization reference tables and the sync tables with their
//     gorm models (missing tables, missing columns, column type families).
//   - Archive: verifies that the snapshot bucket exists when archiving is enabled.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true, migrating the sync tables only).
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
