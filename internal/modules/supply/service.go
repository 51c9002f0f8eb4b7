package supply

import (
	"context"
	"strconv"
	"strings"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/user"
)

// Service defines supply request business logic.
type Service interface {
	// Place records a request once the actor, store, product, warehouse and quantity all check out.
	Place(ctx context.Context, actor *user.User, req PlaceRequest) (*Request, error)
}

// PlaceRequest carries the selections made in the supply workflow.
type PlaceRequest struct {
	Store     *inventory.Store
	Product   *inventory.Product
	Warehouse *inventory.Warehouse
	Units     int
}

type service struct {
	repo Repository
}

// NewService creates a new supply service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ParseUnits reads a requested quantity typed by the actor.
func ParseUnits(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperr.Validation("Invalid Value...")
	}
	return n, nil
}

// ValidateUnits enforces 0 < units <= MaxUnitsPerRequest. Larger requests are
// rejected rather than escalated.
func ValidateUnits(units int) error {
	if units <= 0 {
		return apperr.Validation("Invalid Value...")
	}
	if units > MaxUnitsPerRequest {
		return apperr.Validationf("Requests above %d units need admin authorization.", MaxUnitsPerRequest)
	}
	return nil
}

func (s *service) Place(ctx context.Context, actor *user.User, req PlaceRequest) (*Request, error) {
	if !auth.CanManage(actor) {
		return nil, apperr.Unauthorized("You are not authorized to do such action...")
	}
	if req.Store == nil || !auth.CanManageStore(actor, req.Store) {
		return nil, apperr.NotFound("This store does not exist or is not managed by you. Exiting...")
	}
	if req.Product == nil || req.Product.StoreID != req.Store.ID {
		return nil, apperr.NotFound("This store does not hold the product.")
	}
	if req.Warehouse == nil {
		return nil, apperr.NotFound("The warehouse with the specified ID does not exist")
	}
	if err := ValidateUnits(req.Units); err != nil {
		return nil, err
	}

	r := &Request{
		ManagerID:      actor.ID,
		WarehouseID:    req.Warehouse.ID,
		StoreID:        req.Store.ID,
		ProductName:    req.Product.Name,
		UnitsRequested: req.Units,
	}
	if err := s.repo.CreateRequest(ctx, r); err != nil {
		return nil, apperr.Backend("place supply request", err)
	}
	return r, nil
}
