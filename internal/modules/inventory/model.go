package inventory

import (
	"time"

	"github.com/georgemunganga/retail/internal/modules/geo"
	"github.com/shopspring/decimal"
)

// Store represents a physical store run by one manager.
type Store struct {
	ID        int64
	Name      string
	Location  geo.Point
	ManagerID int64
}

func (s *Store) ManagedBy() int64 { return s.ManagerID }

// StoreDistance is a store annotated with its distance from a reference point.
type StoreDistance struct {
	*Store
	Distance float64
}

// Product is keyed by (StoreID, Name).
type Product struct {
	StoreID       int64
	Name          string
	PricePerUnit  decimal.Decimal
	NumberOfUnits int
}

// ProductUpdate is the append-only audit record written on every product change.
type ProductUpdate struct {
	UpdateNumber int64
	ManagerID    int64
	StoreID      int64
	ProductName  string
	UpdatedOn    time.Time
}

// Warehouse is read-only reference data.
type Warehouse struct {
	ID       int64
	Location geo.Point
}

// WarehouseDistance is a warehouse annotated with its distance from a store.
type WarehouseDistance struct {
	*Warehouse
	Distance float64
}

// Field selects which product column a change touches.
type Field int

const (
	FieldUnits Field = iota + 1
	FieldPrice
)

func (f Field) String() string {
	switch f {
	case FieldUnits:
		return "unit number"
	case FieldPrice:
		return "price"
	default:
		return "unknown field"
	}
}

// ProductChange carries exactly one new value, picked by Field.
type ProductChange struct {
	Field Field
	Units int
	Price decimal.Decimal
}

func (c ProductChange) Value() string {
	if c.Field == FieldPrice {
		return c.Price.StringFixed(2)
	}
	return decimal.NewFromInt(int64(c.Units)).String()
}
