package models

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Role decides which claims an
// account can see and which mutations it may perform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHospital Role = "hospital"
	RoleAgent    Role = "agent"
	RoleUser     Role = "user"
)

// ParseRole maps a raw string onto a known Role. Anything outside the closed
// set is an error, so unknown roles cannot enter the system at registration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleHospital, RoleAgent, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
