package user

import (
	"context"
	"errors"

	"github.com/georgemunganga/retail/internal/modules/geo"
)

// ErrNotFound is returned when no user row matches.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateName is returned when the name is already taken.
var ErrDuplicateName = errors.New("user name already exists")

// Repository defines user data storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)
	NameExists(ctx context.Context, name string) (bool, error)
	SearchByName(ctx context.Context, part string) ([]*User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateLocation(ctx context.Context, id int64, loc geo.Point) error
}
