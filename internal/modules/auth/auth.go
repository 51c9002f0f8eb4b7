package auth

import (
	"context"

	"github.com/georgemunganga/retail/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login returns the user whose name and password match exactly.
	Login(ctx context.Context, name, password string) (*user.User, error)
}
