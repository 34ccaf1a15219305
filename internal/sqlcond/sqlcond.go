// Package sqlcond renders query scopes as SQL conditions.
//
// The conditions correlate topic and response rows with the host users and
// tenements tables, so the visibility predicate is evaluated by the database.
// Table names come from tenantforum.Tables and must be validated by the
// caller; values are always passed as placeholder arguments.
package sqlcond

import (
	"fmt"
	"strings"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/model"
)

// Aliases of the host tables inside the correlated subqueries.
const (
	authorAlias   = "tf_author"
	tenementAlias = "tf_tenement"
)

// Cond is a SQL boolean expression with its placeholder arguments.
type Cond struct {
	SQL  string
	Args []interface{}
}

// Eq returns "column = ?".
func Eq(column string, value interface{}) Cond {
	return Cond{SQL: column + " = ?", Args: []interface{}{value}}
}

// And joins conditions with AND. Empty conditions are skipped.
func And(conds ...Cond) Cond {
	var parts []string
	var args []interface{}
	for _, c := range conds {
		if c.SQL == "" {
			continue
		}
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}
	if len(parts) == 1 {
		return Cond{SQL: parts[0], Args: args}
	}
	return Cond{SQL: "(" + strings.Join(parts, " AND ") + ")", Args: args}
}

// Or joins conditions with OR.
func Or(conds ...Cond) Cond {
	parts := make([]string, 0, len(conds))
	var args []interface{}
	for _, c := range conds {
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}
	if len(parts) == 1 {
		return Cond{SQL: parts[0], Args: args}
	}
	return Cond{SQL: "(" + strings.Join(parts, " OR ") + ")", Args: args}
}

// Builder renders scopes against one table layout.
type Builder struct {
	tables tenantforum.Tables
}

// New creates a Builder for tables.
func New(tables tenantforum.Tables) (*Builder, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &Builder{tables: tables}, nil
}

// Tables returns the table layout of the builder.
func (b *Builder) Tables() tenantforum.Tables {
	return b.tables
}

// TopicColumn qualifies a topic column.
func (b *Builder) TopicColumn(column string) string {
	return b.tables.Topic() + "." + column
}

// ResponseColumn qualifies a response column.
func (b *Builder) ResponseColumn(column string) string {
	return b.tables.Response() + "." + column
}

// Topics renders scope as a condition on the topic table.
func (b *Builder) Topics(scope tenantforum.Scope) (Cond, error) {
	if err := scope.Validate(); err != nil {
		return Cond{}, err
	}

	switch scope.Kind {
	case tenantforum.ScopeOwn:
		return Eq(b.TopicColumn("user_id"), scope.User.ID), nil
	case tenantforum.ScopeVisible:
		return Or(Eq(b.TopicColumn("user_id"), scope.User.ID), b.sharedWith(scope.User)), nil
	case tenantforum.ScopeCustomer:
		return b.authorCustomer(scope.Customer), nil
	default:
		return Cond{}, tenantforum.ErrInvalidScope
	}
}

// Responses renders scope as a condition on the response table.
//
// Own scope matches the responder. Visible scope matches own responses and
// responses to topics shared with the user. Customer scope matches responses
// to topics whose author belongs to the customer.
func (b *Builder) Responses(scope tenantforum.Scope) (Cond, error) {
	if err := scope.Validate(); err != nil {
		return Cond{}, err
	}

	switch scope.Kind {
	case tenantforum.ScopeOwn:
		return Eq(b.ResponseColumn("user_id"), scope.User.ID), nil
	case tenantforum.ScopeVisible:
		return Or(Eq(b.ResponseColumn("user_id"), scope.User.ID), b.parentTopic(b.sharedWith(scope.User))), nil
	case tenantforum.ScopeCustomer:
		return b.parentTopic(b.authorCustomer(scope.Customer)), nil
	default:
		return Cond{}, tenantforum.ErrInvalidScope
	}
}

// sharedWith matches topics whose author's tenement shares the topic with
// user: same customer, and either customer-wide or the same address.
func (b *Builder) sharedWith(user model.User) Cond {
	visibility := b.TopicColumn("visibility")
	inner := Cond{
		SQL: fmt.Sprintf("%s.customer_id = ? AND (%s = ? OR (%s = ? AND %s.address_id = ?))",
			tenementAlias, visibility, visibility, tenementAlias),
		Args: []interface{}{
			user.CustomerID,
			string(model.VisibilityCustomer),
			string(model.VisibilityTenement),
			user.Tenement.AddressID,
		},
	}
	return b.author(inner)
}

func (b *Builder) authorCustomer(customer model.Customer) Cond {
	return b.author(Cond{SQL: tenementAlias + ".customer_id = ?", Args: []interface{}{customer.ID}})
}

// author wraps cond in a subquery over the topic author and their tenement.
func (b *Builder) author(cond Cond) Cond {
	return Cond{
		SQL: fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s %s INNER JOIN %s %s ON %s.id = %s.tenement_id WHERE %s.id = %s AND %s)",
			b.tables.Users, authorAlias,
			b.tables.Tenements, tenementAlias,
			tenementAlias, authorAlias,
			authorAlias, b.TopicColumn("user_id"),
			cond.SQL,
		),
		Args: cond.Args,
	}
}

// parentTopic wraps a topic condition in a subquery over the parent topic of
// a response.
func (b *Builder) parentTopic(cond Cond) Cond {
	return Cond{
		SQL: fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s = %s AND %s)",
			b.tables.Topic(), b.TopicColumn("id"), b.ResponseColumn("topic_id"), cond.SQL),
		Args: cond.Args,
	}
}
