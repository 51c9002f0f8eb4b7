package order

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/geo"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/user"
)

// Service defines the order business logic.
type Service interface {
	// PlaceOrder validates quantity and stock, then persists the order atomically.
	PlaceOrder(ctx context.Context, actor *user.User, req PlaceOrderRequest) (*Order, error)
	// RecentOrders returns the actor's latest orders, newest first.
	RecentOrders(ctx context.Context, actor *user.User) ([]*Summary, error)
}

// PlaceOrderRequest carries the selections made in the order workflow.
type PlaceOrderRequest struct {
	Store   *inventory.Store
	Product *inventory.Product
	Units   int
}

var (
	errInvalidQuantity = apperr.Validation("Invalid Value...")
	errNotEnoughStock  = apperr.Validation("Not enough stock at store to process order....")
	errInvalidStore    = apperr.NotFound("Invalid Store...")
)

type service struct {
	repo   Repository
	radius float64
	now    func() time.Time
}

// NewService creates a new order service. radius bounds which stores a non-admin may order from.
func NewService(repo Repository, radius float64) Service {
	return &service{repo: repo, radius: radius, now: time.Now}
}

// ParseQuantity reads a unit count typed by the actor.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errInvalidQuantity
	}
	return n, nil
}

// ValidateQuantity enforces 0 < units <= MaxUnitsPerOrder.
func ValidateQuantity(units int) error {
	if units <= 0 || units > MaxUnitsPerOrder {
		return errInvalidQuantity
	}
	return nil
}

func (s *service) PlaceOrder(ctx context.Context, actor *user.User, req PlaceOrderRequest) (*Order, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("You must be logged in to place an order.")
	}
	if req.Store == nil {
		return nil, errInvalidStore
	}
	if !auth.IsAdmin(actor) && !geo.Within(actor.Location, req.Store.Location, s.radius) {
		return nil, errInvalidStore
	}
	if req.Product == nil || req.Product.StoreID != req.Store.ID {
		return nil, apperr.NotFound("This store does not hold the product.")
	}
	if err := ValidateQuantity(req.Units); err != nil {
		return nil, err
	}
	if req.Units > req.Product.NumberOfUnits {
		return nil, errNotEnoughStock
	}

	o := &Order{
		CustomerID:   actor.ID,
		StoreID:      req.Store.ID,
		ProductName:  req.Product.Name,
		UnitsOrdered: req.Units,
		OrderTime:    s.now(),
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		switch {
		case errors.Is(err, ErrInsufficientStock):
			return nil, errNotEnoughStock
		case errors.Is(err, ErrProductNotFound):
			return nil, apperr.NotFoundf("This store does not hold the product: %s", req.Product.Name)
		default:
			return nil, apperr.Backend("place order", err)
		}
	}
	return o, nil
}

func (s *service) RecentOrders(ctx context.Context, actor *user.User) ([]*Summary, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("You must be logged in to view orders.")
	}
	orders, err := s.repo.ListRecentByCustomer(ctx, actor.ID, RecentLimit)
	if err != nil {
		return nil, apperr.Backend("recent orders", err)
	}
	return orders, nil
}
