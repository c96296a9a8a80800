// Package database handles database connections and schema inspection.
//
// It wraps GORM to open the record store database, MySQL in production and
// SQLite for local development and tests, based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, sizes the connection pool and pings the
// server within the configured timeout. The connection is optional for most
// commands: callers log the failure and fall back to archived snapshots.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns on either dialect. The integrity feature
// uses it to verify that the record tables match the models in core/records.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "water_usage")
package database
