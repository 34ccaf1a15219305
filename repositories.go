package tenantforum

import (
	"context"
	"fmt"

	"github.com/coregx/tenantforum/model"
)

// ScopeKind selects the rule a Scope applies.
type ScopeKind int

const (
	// ScopeVisible selects own records and records shared with the user.
	ScopeVisible ScopeKind = iota + 1

	// ScopeOwn selects records authored by the user.
	ScopeOwn

	// ScopeCustomer selects records whose topic author belongs to the customer.
	ScopeCustomer
)

// Scope restricts which topics or responses a query may return.
// Build one with VisibleTo, OwnedBy or OfCustomer; the zero Scope is invalid.
type Scope struct {
	Kind     ScopeKind
	User     model.User
	Customer model.Customer
}

// VisibleTo scopes a query to the records user may see.
func VisibleTo(user model.User) Scope {
	return Scope{Kind: ScopeVisible, User: user}
}

// OwnedBy scopes a query to the records authored by user.
func OwnedBy(user model.User) Scope {
	return Scope{Kind: ScopeOwn, User: user}
}

// OfCustomer scopes a query to the records of a customer.
func OfCustomer(customer model.Customer) Scope {
	return Scope{Kind: ScopeCustomer, Customer: customer}
}

// Validate checks that the scope was built by one of the constructors.
func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeVisible, ScopeOwn, ScopeCustomer:
		return nil
	default:
		return ErrInvalidScope
	}
}

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s.Kind {
	case ScopeVisible:
		return fmt.Sprintf("visible(user=%d)", s.User.ID)
	case ScopeOwn:
		return fmt.Sprintf("own(user=%d)", s.User.ID)
	case ScopeCustomer:
		return fmt.Sprintf("customer(%d)", s.Customer.ID)
	default:
		return "invalid"
	}
}

// TopicRepository defines the persistence interface for topics.
//
// Finders return results ordered by creation time, oldest first, and an empty
// slice if nothing matches.
type TopicRepository interface {
	// Load retrieves a topic by ID regardless of scope.
	// Returns ErrNoSuchTopic if not found.
	Load(ctx context.Context, id int64) (model.Topic, error)

	// Save creates a new topic (if ID=0) or updates an existing one.
	// Returns the saved topic with populated ID.
	Save(ctx context.Context, m model.Topic) (model.Topic, error)

	// Delete removes a topic along with all its responses.
	Delete(ctx context.Context, m model.Topic) error

	// Find retrieves all topics in scope.
	Find(ctx context.Context, scope Scope) ([]model.Topic, error)

	// Get retrieves a topic by ID within scope.
	// Returns ErrNoSuchTopic if it does not exist or is out of scope.
	Get(ctx context.Context, id int64, scope Scope) (model.Topic, error)
}

// ResponseRepository defines the persistence interface for responses.
//
// Scopes apply to responses as follows: ScopeOwn matches the responder,
// ScopeVisible matches own responses and responses to topics shared with the
// user, ScopeCustomer matches responses to topics of the customer.
type ResponseRepository interface {
	// Load retrieves a response by ID regardless of scope.
	// Returns ErrNoSuchResponse if not found.
	Load(ctx context.Context, id int64) (model.Response, error)

	// Save creates a new response (if ID=0) or updates an existing one.
	// Returns the saved response with populated ID.
	Save(ctx context.Context, m model.Response) (model.Response, error)

	// Delete removes a response.
	Delete(ctx context.Context, m model.Response) error

	// Find retrieves all responses in scope.
	Find(ctx context.Context, scope Scope) ([]model.Response, error)

	// FindByTopic retrieves the responses to a topic within scope.
	FindByTopic(ctx context.Context, topicID int64, scope Scope) ([]model.Response, error)

	// Get retrieves a response by ID within scope.
	// Returns ErrNoSuchResponse if it does not exist or is out of scope.
	Get(ctx context.Context, id int64, scope Scope) (model.Response, error)
}
