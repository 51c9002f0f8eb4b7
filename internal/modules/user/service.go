package user

import (
	"context"

	"github.com/georgemunganga/retail/internal/modules/geo"
)

// Service defines the interface for user-related business logic.
type Service interface {
	// CheckNameAvailable fails when name is malformed or already registered.
	CheckNameAvailable(ctx context.Context, name string) error
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)

	// Search lists users whose name contains part. Admin only.
	Search(ctx context.Context, actor *User, part string) ([]*User, error)
	// Resolve narrows a search to one user. When it cannot, the candidates are returned instead.
	Resolve(ctx context.Context, actor *User, part string) (*User, []*User, error)

	Rename(ctx context.Context, actor, target *User, newName string) error
	ChangePassword(ctx context.Context, actor, target *User, password string) error
	Relocate(ctx context.Context, actor, target *User, loc geo.Point) error
}

// RegisterRequest holds data for creating a customer account.
type RegisterRequest struct {
	Name     string
	Password string
	Location geo.Point
}

// Hasher turns passwords into their stored form and checks them.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(stored, password string) error
}

// EditPolicy reports whether actor may view or change target. target is nil for searches.
type EditPolicy func(actor, target *User) bool
