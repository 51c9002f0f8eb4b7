package report

import (
	"context"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/user"
)

// Service defines the manager and admin reports. Managers see their own
// stores; admins see everything.
type Service interface {
	RecentUpdates(ctx context.Context, actor *user.User) ([]*UpdateEntry, error)
	PopularProducts(ctx context.Context, actor *user.User) ([]*ProductPopularity, error)
	PopularCustomers(ctx context.Context, actor *user.User) ([]*CustomerPopularity, error)
	// StoreManagers is admin only.
	StoreManagers(ctx context.Context, actor *user.User) ([]*StoreManager, error)
}

var errNotAuthorized = apperr.Unauthorized("You are not authorized to do such action...")

type service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecentUpdates(ctx context.Context, actor *user.User) ([]*UpdateEntry, error) {
	scope, err := scopeOf(actor)
	if err != nil {
		return nil, err
	}
	out, err := s.repo.RecentUpdates(ctx, scope, Limit)
	if err != nil {
		return nil, apperr.Backend("recent updates", err)
	}
	return out, nil
}

func (s *service) PopularProducts(ctx context.Context, actor *user.User) ([]*ProductPopularity, error) {
	scope, err := scopeOf(actor)
	if err != nil {
		return nil, err
	}
	out, err := s.repo.PopularProducts(ctx, scope, Limit)
	if err != nil {
		return nil, apperr.Backend("popular products", err)
	}
	return out, nil
}

func (s *service) PopularCustomers(ctx context.Context, actor *user.User) ([]*CustomerPopularity, error) {
	scope, err := scopeOf(actor)
	if err != nil {
		return nil, err
	}
	out, err := s.repo.PopularCustomers(ctx, scope, Limit)
	if err != nil {
		return nil, apperr.Backend("popular customers", err)
	}
	return out, nil
}

func (s *service) StoreManagers(ctx context.Context, actor *user.User) ([]*StoreManager, error) {
	if !auth.IsAdmin(actor) {
		return nil, errNotAuthorized
	}
	out, err := s.repo.StoreManagers(ctx)
	if err != nil {
		return nil, apperr.Backend("store managers", err)
	}
	return out, nil
}

// scopeOf maps the actor to the manager filter of a report.
func scopeOf(actor *user.User) (int64, error) {
	switch {
	case auth.IsAdmin(actor):
		return AllManagers, nil
	case auth.IsManager(actor):
		return actor.ID, nil
	default:
		return 0, errNotAuthorized
	}
}
