package inventory

import (
	"context"
	"errors"
	"time"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
)

// StoreRepository defines store data storage.
type StoreRepository interface {
	ListStores(ctx context.Context) ([]*Store, error)
	ListStoresByManager(ctx context.Context, managerID int64) ([]*Store, error)
	GetStoreByID(ctx context.Context, id int64) (*Store, error)
}

// ProductRepository defines product data storage.
type ProductRepository interface {
	ListProducts(ctx context.Context, storeID int64) ([]*Product, error)
	GetProduct(ctx context.Context, storeID int64, name string) (*Product, error)
	// ApplyUpdate writes the audit row and the field change in one transaction.
	ApplyUpdate(ctx context.Context, managerID, storeID int64, name string, change ProductChange, at time.Time) (*ProductUpdate, error)
}

// WarehouseRepository defines warehouse lookups.
type WarehouseRepository interface {
	ListWarehouses(ctx context.Context) ([]*Warehouse, error)
	GetWarehouse(ctx context.Context, id int64) (*Warehouse, error)
}
