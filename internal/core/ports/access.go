package ports

import "github.com/creomotion/agency-api/internal/core/domain"

// Access carries the verified session claims of the caller into the service
// layer. Services use it for ownership scoping; route-level role gates are
// enforced by the RBAC middleware before the handler runs.
type Access struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (a Access) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// IsStaff reports whether the caller is back-office staff (ADMIN or EDITOR).
func (a Access) IsStaff() bool {
	return a.Role == domain.RoleAdmin || a.Role == domain.RoleEditor
}

// IsClient reports whether the caller authenticated with the CLIENT role,
// either as a Client contact or as a staff-managed portal account.
func (a Access) IsClient() bool { return a.Role == domain.RoleClient }
