package user

import (
	"strings"

	"github.com/georgemunganga/retail/internal/modules/geo"
)

// Role is the user type stored in Users.type.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ParseRole normalises a stored type value. The column is fixed-width and
// historically mixed-case, so padding and case are ignored.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// User represents a registered account.
type User struct {
	ID   int64
	Name string
	// PasswordHash holds a bcrypt hash, or the raw password under the plaintext scheme.
	PasswordHash string
	Location     geo.Point
	Role         Role
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

func (u *User) IsManager() bool { return u != nil && u.Role == RoleManager }
