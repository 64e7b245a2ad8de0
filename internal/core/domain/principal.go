package domain

import "time"

// Roles carried in session tokens. A User row may itself hold RoleClient:
// that is a staff-managed portal account, distinct from a Client contact row.
const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleClient = "CLIENT"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleClient
}

// PrincipalKind tags which table a principal was resolved from.
type PrincipalKind string

const (
	PrincipalStaff  PrincipalKind = "staff"
	PrincipalClient PrincipalKind = "client"
)

// Principal is the authenticated identity attached to a request. It is the
// tagged result of the dual User/Client lookup: a User match yields a staff
// principal with that user's role, a Client match yields a client principal
// with RoleClient.
type Principal struct {
	ID    string
	Email string
	Name  string
	Role  string
	Kind  PrincipalKind
}

// User is a staff member of the agency back-office.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Client is a customer organisation or contact. It owns projects and
// invoices. PasswordHash is empty when no portal access has been provisioned.
type Client struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasPortalAccess reports whether the client can sign in to the portal.
func (c *Client) HasPortalAccess() bool {
	return c.PasswordHash != ""
}
