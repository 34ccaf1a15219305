// Package gorm provides repository implementations using GORM.
//
// The repositories evaluate the tenant-visibility rules in SQL, joining the
// host users and tenements tables named by tenantforum.Tables.
//
// Example usage:
//
//	import (
//	    "github.com/coregx/tenantforum"
//	    forumgorm "github.com/coregx/tenantforum/adapters/gorm"
//	)
//
//	db, err := forumgorm.Open(forumgorm.Config{
//	    Driver: "postgres",
//	    DSN:    "host=localhost user=forum dbname=forum sslmode=disable",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	repos := forumgorm.NewRepositories(db)
//	forum, err := tenantforum.NewForum(
//	    tenantforum.WithRepositories(repos.Topic, repos.Response),
//	)
package gorm
