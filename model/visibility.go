package model

import (
	"database/sql/driver"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Visibility controls which non-authors may view a topic.
type Visibility string

const (
	// VisibilityCustomer grants access to all users of the author's customer.
	VisibilityCustomer Visibility = "CUSTOMER"

	// VisibilityTenement grants access to users living at the author's
	// tenement address only.
	VisibilityTenement Visibility = "TENEMENT"
)

// DefaultVisibility is applied to topics created without an explicit visibility.
const DefaultVisibility = VisibilityTenement

// ParseVisibility parses a visibility name. Matching is case-insensitive.
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToUpper(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visibility %q", s)
	}
	return v, nil
}

// IsValid reports whether v is a known visibility.
func (v Visibility) IsValid() bool {
	return v == VisibilityCustomer || v == VisibilityTenement
}

// OrDefault returns v, or DefaultVisibility if v is empty.
func (v Visibility) OrDefault() Visibility {
	if v == "" {
		return DefaultVisibility
	}
	return v
}

// String implements fmt.Stringer.
func (v Visibility) String() string {
	return string(v)
}

// Validate implements validation.Validatable.
func (v Visibility) Validate() error {
	if v == "" || v.IsValid() {
		return nil
	}
	return validation.NewError("validation_visibility_invalid", "must be CUSTOMER or TENEMENT")
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	v = v.OrDefault()
	if !v.IsValid() {
		return nil, fmt.Errorf("invalid visibility %q", string(v))
	}
	return []byte(v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*v = ""
		return nil
	}
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Value implements driver.Valuer. The empty visibility is stored as the default.
func (v Visibility) Value() (driver.Value, error) {
	v = v.OrDefault()
	if !v.IsValid() {
		return nil, fmt.Errorf("invalid visibility %q", string(v))
	}
	return string(v), nil
}

// Scan implements sql.Scanner.
func (v *Visibility) Scan(src interface{}) error {
	switch s := src.(type) {
	case string:
		return v.UnmarshalText([]byte(s))
	case []byte:
		return v.UnmarshalText(s)
	case nil:
		*v = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Visibility", src)
	}
}

// TopicVisibleTo reports whether viewer may see topic, given the tenement of
// the topic's author.
//
// A topic is visible to its author. Other users must belong to the customer of
// the author's tenement and either the topic is customer-wide, or it is
// tenement-wide and the viewer lives at the same address as the author.
func TopicVisibleTo(topic Topic, authorTenement Tenement, viewer User) bool {
	if topic.UserID == viewer.ID {
		return true
	}
	return sharedWith(topic.Visibility, authorTenement, viewer)
}

// ResponseVisibleTo reports whether viewer may see response to topic, given
// the tenement of the topic's author.
func ResponseVisibleTo(response Response, topic Topic, authorTenement Tenement, viewer User) bool {
	if response.TopicID != topic.ID {
		return false
	}
	if response.UserID == viewer.ID {
		return true
	}
	return sharedWith(topic.Visibility, authorTenement, viewer)
}

func sharedWith(visibility Visibility, authorTenement Tenement, viewer User) bool {
	if authorTenement.CustomerID != viewer.CustomerID {
		return false
	}
	switch visibility.OrDefault() {
	case VisibilityCustomer:
		return true
	case VisibilityTenement:
		return authorTenement.AddressID == viewer.Tenement.AddressID
	default:
		return false
	}
}
