// Package tenantforum provides the data-access layer of a tenant forum for
// property-management platforms: topics opened by tenant users, responses to
// them, and the visibility rules deciding who may read what.
//
// The library is embedded into a host web application. It owns the topic and
// response tables and reads the host's users and tenements tables to decide
// visibility; it has no listener or process loop of its own.
//
// # Features
//
//   - Tenant visibility: topics are shared customer-wide or with the tenements
//     at the author's address, evaluated in SQL by the database
//   - Ownership checks: only authors may patch or delete their topics and responses
//   - Lookup failures and hidden records are indistinguishable (ErrNoSuchTopic, ErrNoSuchResponse)
//   - Payload validation (ozzo-validation) and HTML sanitising (bluemonday)
//   - Repository Pattern with Relica and GORM adapters
//   - Options Pattern for service configuration
//   - Pluggable Logger (zap adapter included) and NotificationService
//   - Prometheus instrumentation in the metrics package
//   - Embedded Migrations for MySQL, PostgreSQL and SQLite
//
// # Quick Start
//
// First, apply the database migrations:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/tenantforum"
//	    "github.com/coregx/tenantforum/adapters/relica"
//	    _ "github.com/go-sql-driver/mysql"
//	)
//
//	db, _ := sql.Open("mysql", "user:pass@tcp(localhost:3306)/app?parseTime=true")
//
//	if err := tenantforum.Migrate(ctx, db, "mysql", tenantforum.DefaultTables()); err != nil {
//	    log.Fatal(err)
//	}
//
// Create the forum:
//
//	repos := relica.NewRepositories(db, "mysql")
//
//	forum, err := tenantforum.NewForum(
//	    tenantforum.WithRepositories(repos.Topic, repos.Response),
//	    tenantforum.WithLogger(tenantforum.NewZapLogger(zapLogger)),
//	)
//
// Serve requests on behalf of the authenticated user:
//
//	topics, err := forum.GetVisibleTopics(ctx, user)
//
//	topic, err := forum.CreateTopic(ctx, user, model.TopicPayload{
//	    Title:      "Laundry room",
//	    Text:       "The dryer is broken again.",
//	    Visibility: model.VisibilityTenement,
//	})
//
//	if err != nil {
//	    api.WriteError(w, err) // 404 for lookup failures, 400 for invalid payloads
//	}
//
// # Visibility
//
// A topic is visible to its author. Any other user must belong to the customer
// of the author's tenement, and either
//
//	visibility = CUSTOMER
//	visibility = TENEMENT and the user's tenement has the author's address
//
// A response is visible to its author and to everyone who may see the topic
// through the rule above.
//
// # Database Schema
//
// The library creates 2 tables (via embedded migrations):
//
//	tenantforum_topic     - Topics with author, title, text, visibility
//	tenantforum_response  - Responses, deleted together with their topic
//
// and reads 2 host tables:
//
//	users      (id, tenement_id)
//	tenements  (id, customer_id, address_id)
//
// Table prefix and host table names can be customized (see Tables).
package tenantforum
