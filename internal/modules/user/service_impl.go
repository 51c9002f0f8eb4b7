package user

import (
	"context"
	"errors"
	"strings"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/geo"
)

type service struct {
	repo    Repository
	hasher  Hasher
	canEdit EditPolicy
}

// NewService creates a new user service.
func NewService(repo Repository, hasher Hasher, canEdit EditPolicy) Service {
	return &service{repo: repo, hasher: hasher, canEdit: canEdit}
}

func (s *service) CheckNameAvailable(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	exists, err := s.repo.NameExists(ctx, strings.TrimSpace(name))
	if err != nil {
		return apperr.Backend("check user name", err)
	}
	if exists {
		return apperr.Validationf("The user '%s' already exists within the database.", name)
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.CheckNameAvailable(ctx, name); err != nil {
		return nil, err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := ValidateLocation(req.Location); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Backend("hash password", err)
	}

	u := &User{
		Name:         name,
		PasswordHash: hashed,
		Location:     req.Location,
		Role:         RoleCustomer,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, apperr.Validationf("The user '%s' already exists within the database.", name)
		}
		return nil, apperr.Backend("create user", err)
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFoundf("User #%d does not exist.", id)
	}
	if err != nil {
		return nil, apperr.Backend("get user", err)
	}
	return u, nil
}

func (s *service) Search(ctx context.Context, actor *User, part string) ([]*User, error) {
	if !s.canEdit(actor, nil) {
		return nil, apperr.Unauthorized("You are not authorised to view user information.")
	}
	users, err := s.repo.SearchByName(ctx, part)
	if err != nil {
		return nil, apperr.Backend("search users", err)
	}
	return users, nil
}

func (s *service) Resolve(ctx context.Context, actor *User, part string) (*User, []*User, error) {
	matches, err := s.Search(ctx, actor, part)
	if err != nil {
		return nil, nil, err
	}
	if len(matches) == 1 {
		return matches[0], nil, nil
	}
	for _, m := range matches {
		if m.Name == part {
			return m, nil, nil
		}
	}
	return nil, matches, nil
}

func (s *service) Rename(ctx context.Context, actor, target *User, newName string) error {
	if err := s.authorize(actor, target); err != nil {
		return err
	}
	newName = strings.TrimSpace(newName)
	if err := s.CheckNameAvailable(ctx, newName); err != nil {
		return err
	}
	if err := s.repo.UpdateName(ctx, target.ID, newName); err != nil {
		return s.updateErr("rename user", target, err)
	}
	target.Name = newName
	return nil
}

func (s *service) ChangePassword(ctx context.Context, actor, target *User, password string) error {
	if err := s.authorize(actor, target); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return apperr.Backend("hash password", err)
	}
	if err := s.repo.UpdatePassword(ctx, target.ID, hashed); err != nil {
		return s.updateErr("change password", target, err)
	}
	target.PasswordHash = hashed
	return nil
}

func (s *service) Relocate(ctx context.Context, actor, target *User, loc geo.Point) error {
	if err := s.authorize(actor, target); err != nil {
		return err
	}
	if err := ValidateLocation(loc); err != nil {
		return err
	}
	if err := s.repo.UpdateLocation(ctx, target.ID, loc); err != nil {
		return s.updateErr("relocate user", target, err)
	}
	target.Location = loc
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *service) authorize(actor, target *User) error {
	if target == nil || !s.canEdit(actor, target) {
		return apperr.Unauthorized("You are not authorised to change user information.")
	}
	return nil
}

func (s *service) updateErr(op string, target *User, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.NotFoundf("User '%s' no longer exists.", target.Name)
	case errors.Is(err, ErrDuplicateName):
		return apperr.Validation("That name is already taken.")
	default:
		return apperr.Backend(op, err)
	}
}
