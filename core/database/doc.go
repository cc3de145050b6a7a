// Package database handles database connections and schema inspection.
//
// It wraps GORM and picks the dialector from configuration: PostgreSQL (the hosted
// production database), MySQL, or SQLite for local runs and tests.
//
// # Connect
//
// Connect opens the connection, applies pool limits and pings the server within the
// configured timeout. SQLite connections are limited to one open connection so an
// in-memory database is shared by every query.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table using PRAGMA table_info,
// information_schema.columns or SHOW COLUMNS depending on the dialect. The integrity
// feature compares the result with the gorm models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "civilization_meta_stats")
package database
