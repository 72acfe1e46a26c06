// Package database handles database connections and binding of query results.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection pool and verifies it with a ping.
//
// # Records
//
// Records runs a raw query and binds every row into a typed value through the
// binding engine. Columns map to fields by their bind key, so the same struct
// can be bound from a form, a document or a table row. Rows with malformed
// columns are kept and carry their problems.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	rows, err := database.Records[User](ctx, db, logger, "SELECT * FROM users")
package database
