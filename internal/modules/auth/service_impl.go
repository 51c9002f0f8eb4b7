package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/user"
)

var errInvalidCredentials = apperr.Unauthorized("Sorry, we couldn't find this username/password combination....")

type service struct {
	userRepo user.Repository
	hasher   user.Hasher
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, hasher user.Hasher) Service {
	return &service{userRepo: userRepo, hasher: hasher}
}

func (s *service) Login(ctx context.Context, name, password string) (*user.User, error) {
	u, err := s.userRepo.GetUserByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, user.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Backend("login", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, errInvalidCredentials
	}
	return u, nil
}
