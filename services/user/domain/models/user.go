package models

import (
	"fmt"
	"time"

	userdomain "github.com/ghuser/thoron/services/user/domain"
)

// Role grants a user access to parts of the dashboard.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleDispatcher Role = "Dispatcher"
	RoleDriver     Role = "Driver"
	RoleCustomer   Role = "Customer"
)

// ParseRole validates s as a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleDispatcher, RoleDriver, RoleCustomer:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", userdomain.ErrInvalidRole, s)
	}
}

// User is a dashboard account.
type User struct {
	ID         int64
	Name       string
	Email      string
	Role       Role
	Department string
	LastLogin  *time.Time // nil until first sign-in
	Status     string
	CreatedAt  time.Time
}
