package gorm

import (
	"gorm.io/gorm"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/internal/sqlcond"
	"github.com/coregx/tenantforum/model"
)

// Repositories holds all repository implementations.
type Repositories struct {
	Topic    tenantforum.TopicRepository
	Response tenantforum.ResponseRepository
}

// NewRepositories creates all repository implementations using GORM with the
// default table layout.
func NewRepositories(db *gorm.DB) *Repositories {
	b, err := sqlcond.New(tenantforum.DefaultTables())
	if err != nil {
		panic(err)
	}
	return newRepositories(db, b)
}

// NewRepositoriesWithTables creates all repository implementations with a
// custom table layout. Returns a configuration error for invalid table names.
func NewRepositoriesWithTables(db *gorm.DB, tables tenantforum.Tables) (*Repositories, error) {
	b, err := sqlcond.New(tables)
	if err != nil {
		return nil, err
	}
	return newRepositories(db, b), nil
}

func newRepositories(db *gorm.DB, b *sqlcond.Builder) *Repositories {
	return &Repositories{
		Topic:    &TopicRepository{db: db, cond: b},
		Response: &ResponseRepository{db: db, cond: b},
	}
}

// AutoMigrate creates or updates the topic and response tables.
//
// The tables are created without the cascading foreign key; use
// tenantforum.Migrate for the full schema. The repositories delete responses
// of a topic explicitly, so either schema works.
func AutoMigrate(db *gorm.DB, tables tenantforum.Tables) error {
	if err := tables.Validate(); err != nil {
		return err
	}
	if err := db.Table(tables.Topic()).AutoMigrate(&model.Topic{}); err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to migrate topic table", err)
	}
	if err := db.Table(tables.Response()).AutoMigrate(&model.Response{}); err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to migrate response table", err)
	}
	return nil
}
