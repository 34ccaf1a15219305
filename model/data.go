// Package model contains the domain models of the tenant forum: topics,
// responses and the host-owned tenant entities they are scoped by.
package model

// DefaultTablePrefix is the prefix of all tables owned by this library.
const DefaultTablePrefix = "tenantforum_"

const tablePrefix = DefaultTablePrefix

// Customer is the billing/organizational entity owning one or more tenements.
// It is owned by the host application and never written by this library.
type Customer struct {
	ID int64 `json:"id"`
}

// Tenement is a managed property unit. Tenements sharing an address are
// units of the same building.
type Tenement struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer"`
	AddressID  int64 `json:"address"`
}

// User is an authenticated tenant user as handed in by the host application.
type User struct {
	ID         int64    `json:"id"`
	CustomerID int64    `json:"customer"`
	Tenement   Tenement `json:"tenement"`
}

// Customer returns the customer the user belongs to.
func (u User) Customer() Customer {
	return Customer{ID: u.CustomerID}
}
