package domain

import "time"

// Role controls what a user may do. Employees are the bookable staff;
// receptionists and admins drive the appointment lifecycle from the desk.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleEmployee     Role = "EMPLOYEE"
	RoleCustomer     Role = "CUSTOMER"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// Actor is the authenticated caller of a protected operation, as resolved
// by the auth middleware. Role decides how list queries are scoped.
type Actor struct {
	UserID int64
	Role   Role
}

// IsStaff reports whether the actor may see and drive other users'
// appointments.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleReceptionist
}

// User is a staff member or customer. Appointments reference users by id.
type User struct {
	ID        int64
	Role      Role
	FirstName string
	LastName  string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
