package tenantforum

import (
	"fmt"
	"regexp"

	"github.com/coregx/tenantforum/model"
)

// Tables names the tables queried by the storage adapters.
//
// Topic and response tables are owned by this library and share Prefix.
// Users and Tenements are host tables and must provide the columns
// users(id, tenement_id) and tenements(id, customer_id, address_id).
type Tables struct {
	Prefix    string
	Users     string
	Tenements string
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DefaultTables returns the default table layout.
func DefaultTables() Tables {
	return Tables{
		Prefix:    model.DefaultTablePrefix,
		Users:     "users",
		Tenements: "tenements",
	}
}

// TablesWithPrefix returns the default table layout with a custom prefix.
func TablesWithPrefix(prefix string) Tables {
	t := DefaultTables()
	t.Prefix = prefix
	return t
}

// Topic returns the topic table name.
func (t Tables) Topic() string {
	return t.Prefix + "topic"
}

// Response returns the response table name.
func (t Tables) Response() string {
	return t.Prefix + "response"
}

// Validate checks that all names are plain SQL identifiers. Table names are
// interpolated into queries, so anything else is rejected.
func (t Tables) Validate() error {
	names := map[string]string{
		"topic":     t.Topic(),
		"response":  t.Response(),
		"users":     t.Users,
		"tenements": t.Tenements,
	}
	for kind, name := range names {
		if !identifierPattern.MatchString(name) {
			return NewError(ErrCodeConfiguration, fmt.Sprintf("invalid %s table name %q", kind, name))
		}
	}
	return nil
}
