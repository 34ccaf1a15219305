// Package relica provides repository implementations using Relica query builder.
//
// Relica (github.com/coregx/relica) is a lightweight, type-safe database query builder
// for Go with zero production dependencies.
//
// This package provides implementations of the tenantforum repository interfaces:
//   - TopicRepository
//   - ResponseRepository
//
// Scoped finders run the tenant-visibility checks as correlated subqueries
// against the host users and tenements tables.
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/tenantforum"
//	    "github.com/coregx/tenantforum/adapters/relica"
//	    _ "github.com/go-sql-driver/mysql"
//	)
//
//	// Open database connection
//	db, err := sql.Open("mysql", "user:pass@tcp(localhost:3306)/forum?parseTime=true")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply the schema once
//	if err := tenantforum.Migrate(ctx, db, "mysql", tenantforum.DefaultTables()); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create repositories (driverName should be "mysql", "postgres", or "sqlite3")
//	repos := relica.NewRepositories(db, "mysql")
//
//	forum, err := tenantforum.NewForum(
//	    tenantforum.WithRepositories(repos.Topic, repos.Response),
//	    tenantforum.WithLogger(logger),
//	)
package relica
