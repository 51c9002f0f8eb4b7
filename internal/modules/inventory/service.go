package inventory

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/geo"
	"github.com/georgemunganga/retail/internal/modules/user"
	"github.com/shopspring/decimal"
)

// DefaultRadius is how far a non-admin may browse from their own location.
const DefaultRadius = 30.0

// Service defines store, product and warehouse business logic.
type Service interface {
	// BrowseStores annotates every store with its distance from the actor and
	// keeps those within the radius. Admins see every store. Storage order is kept.
	BrowseStores(ctx context.Context, actor *user.User) ([]StoreDistance, error)
	// ManagedStores lists the stores the actor may manage; admins get all of them.
	ManagedStores(ctx context.Context, actor *user.User) ([]*Store, error)
	// ManagedStore fetches storeID only when the actor may manage it.
	ManagedStore(ctx context.Context, actor *user.User, storeID int64) (*Store, error)

	ListProducts(ctx context.Context, storeID int64) ([]*Product, error)
	GetProduct(ctx context.Context, storeID int64, name string) (*Product, error)
	// UpdateProduct audits and applies one field change to a product of a managed store.
	UpdateProduct(ctx context.Context, actor *user.User, store *Store, productName string, change ProductChange) (*ProductUpdate, error)

	// Warehouses lists every warehouse with its distance from the given point.
	Warehouses(ctx context.Context, from geo.Point) ([]WarehouseDistance, error)
	GetWarehouse(ctx context.Context, id int64) (*Warehouse, error)
}

type service struct {
	storeRepo     StoreRepository
	productRepo   ProductRepository
	warehouseRepo WarehouseRepository
	radius        float64
	now           func() time.Time
}

// NewService creates a new inventory service.
func NewService(storeRepo StoreRepository, productRepo ProductRepository, warehouseRepo WarehouseRepository, radius float64) Service {
	return &service{
		storeRepo:     storeRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		radius:        radius,
		now:           time.Now,
	}
}

func (s *service) BrowseStores(ctx context.Context, actor *user.User) ([]StoreDistance, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("You must be logged in to browse stores.")
	}
	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, apperr.Backend("list stores", err)
	}
	out := make([]StoreDistance, 0, len(stores))
	for _, st := range stores {
		d := geo.Distance(actor.Location, st.Location)
		if d <= s.radius || auth.IsAdmin(actor) {
			out = append(out, StoreDistance{Store: st, Distance: d})
		}
	}
	return out, nil
}

func (s *service) ManagedStores(ctx context.Context, actor *user.User) ([]*Store, error) {
	if !auth.CanManage(actor) {
		return nil, errNotAuthorized
	}
	var (
		stores []*Store
		err    error
	)
	if auth.IsAdmin(actor) {
		stores, err = s.storeRepo.ListStores(ctx)
	} else {
		stores, err = s.storeRepo.ListStoresByManager(ctx, actor.ID)
	}
	if err != nil {
		return nil, apperr.Backend("list managed stores", err)
	}
	return stores, nil
}

func (s *service) ManagedStore(ctx context.Context, actor *user.User, storeID int64) (*Store, error) {
	if !auth.CanManage(actor) {
		return nil, errNotAuthorized
	}
	st, err := s.storeRepo.GetStoreByID(ctx, storeID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, errNotManaged
	}
	if err != nil {
		return nil, apperr.Backend("get store", err)
	}
	if !auth.CanManageStore(actor, st) {
		return nil, errNotManaged
	}
	return st, nil
}

func (s *service) ListProducts(ctx context.Context, storeID int64) ([]*Product, error) {
	products, err := s.productRepo.ListProducts(ctx, storeID)
	if err != nil {
		return nil, apperr.Backend("list products", err)
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, storeID int64, name string) (*Product, error) {
	name = strings.TrimSpace(name)
	p, err := s.productRepo.GetProduct(ctx, storeID, name)
	if errors.Is(err, ErrProductNotFound) {
		return nil, apperr.NotFoundf("This store does not hold the product: %s", name)
	}
	if err != nil {
		return nil, apperr.Backend("get product", err)
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, actor *user.User, store *Store, productName string, change ProductChange) (*ProductUpdate, error) {
	if !auth.CanManage(actor) {
		return nil, errNotAuthorized
	}
	if store == nil || !auth.CanManageStore(actor, store) {
		return nil, errNotManaged
	}
	if err := ValidateChange(change); err != nil {
		return nil, err
	}
	pu, err := s.productRepo.ApplyUpdate(ctx, actor.ID, store.ID, productName, change, s.now())
	if errors.Is(err, ErrProductNotFound) {
		return nil, apperr.NotFoundf("This store does not hold the product: %s", productName)
	}
	if err != nil {
		return nil, apperr.Backend("update product", err)
	}
	return pu, nil
}

func (s *service) Warehouses(ctx context.Context, from geo.Point) ([]WarehouseDistance, error) {
	warehouses, err := s.warehouseRepo.ListWarehouses(ctx)
	if err != nil {
		return nil, apperr.Backend("list warehouses", err)
	}
	out := make([]WarehouseDistance, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, WarehouseDistance{Warehouse: w, Distance: geo.Distance(from, w.Location)})
	}
	return out, nil
}

func (s *service) GetWarehouse(ctx context.Context, id int64) (*Warehouse, error) {
	w, err := s.warehouseRepo.GetWarehouse(ctx, id)
	if errors.Is(err, ErrWarehouseNotFound) {
		return nil, apperr.NotFound("The warehouse with the specified ID does not exist")
	}
	if err != nil {
		return nil, apperr.Backend("get warehouse", err)
	}
	return w, nil
}

// ── validation ───────────────────────────────────────────────────────────────

var (
	errNotAuthorized = apperr.Unauthorized("You are not authorized to do such action...")
	errNotManaged    = apperr.NotFound("This store does not exist or is not managed by you. Exiting...")
)

// MaxUnits is the largest value the integer numberOfUnits column holds.
const MaxUnits = math.MaxInt32

// ValidateChange checks the single new value carried by change.
func ValidateChange(change ProductChange) error {
	switch change.Field {
	case FieldUnits:
		if change.Units < 0 {
			return apperr.Validation("Number of units cannot be negative.")
		}
		if change.Units > MaxUnits {
			return apperr.Validationf("Number of units cannot exceed %d.", MaxUnits)
		}
	case FieldPrice:
		if change.Price.IsNegative() {
			return apperr.Validation("Price per unit cannot be negative.")
		}
	default:
		return apperr.Validation("Invalid Value")
	}
	return nil
}

// ParseUnits reads a units value typed by the actor.
func ParseUnits(raw string) (ProductChange, error) {
	n, err := parseInt(raw)
	if err != nil {
		return ProductChange{}, apperr.Validationf("'%s' is not a whole number of units.", raw)
	}
	c := ProductChange{Field: FieldUnits, Units: n}
	return c, ValidateChange(c)
}

// ParsePrice reads a decimal price typed by the actor.
func ParsePrice(raw string) (ProductChange, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return ProductChange{}, apperr.Validationf("'%s' is not a valid price.", raw)
	}
	c := ProductChange{Field: FieldPrice, Price: d}
	return c, ValidateChange(c)
}
