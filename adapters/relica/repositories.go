package relica

import (
	"database/sql"

	"github.com/coregx/relica"
	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/internal/sqlcond"
)

// Repositories holds all repository implementations.
type Repositories struct {
	Topic    tenantforum.TopicRepository
	Response tenantforum.ResponseRepository
}

// NewRepositories creates all repository implementations using Relica.
//
// The db parameter should be an *sql.DB connected to MySQL, PostgreSQL, or SQLite.
// The driverName should be "mysql", "postgres", or "sqlite3".
// Tables use the default layout (see tenantforum.DefaultTables).
func NewRepositories(db *sql.DB, driverName string) *Repositories {
	repos, err := NewRepositoriesWithTables(db, driverName, tenantforum.DefaultTables())
	if err != nil {
		panic(err)
	}
	return repos
}

// NewRepositoriesWithPrefix creates all repository implementations with a custom table prefix.
func NewRepositoriesWithPrefix(db *sql.DB, driverName, prefix string) (*Repositories, error) {
	return NewRepositoriesWithTables(db, driverName, tenantforum.TablesWithPrefix(prefix))
}

// NewRepositoriesWithTables creates all repository implementations with a
// custom table layout. Returns a configuration error for invalid table names.
func NewRepositoriesWithTables(db *sql.DB, driverName string, tables tenantforum.Tables) (*Repositories, error) {
	b, err := sqlcond.New(tables)
	if err != nil {
		return nil, err
	}

	rdb := relica.WrapDB(db, driverName)
	return &Repositories{
		Topic:    &TopicRepository{db: rdb, cond: b},
		Response: &ResponseRepository{db: rdb, cond: b},
	}, nil
}
