package domain

import "time"

// User represents a system user
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level
type Role string

const (
	// RoleAdmin has full access to all operations
	RoleAdmin Role = "admin"

	// RoleManager can create and update records, but cannot delete or manage users
	RoleManager Role = "manager"

	// RoleStaff can view everything and record orders only
	RoleStaff Role = "staff"
)

// Valid roles
var validRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleStaff:   true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanWrite checks if the role can create and update records
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanDelete checks if the role can delete records
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanManageUsers checks if the role can administer user accounts
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// CanRecordOrders checks if the role can record customer orders
func (r Role) CanRecordOrders() bool {
	return r.IsValid()
}
