package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/georgemunganga/retail/internal/database"
)

// ── Store ─────────────────────────────────────────────────────────────────────

type storePostgres struct{ db database.Querier }

func NewStorePostgresRepository(db database.Querier) StoreRepository { return &storePostgres{db: db} }

func (r *storePostgres) ListStores(ctx context.Context) ([]*Store, error) {
	rows, err := r.db.Query(ctx, `SELECT `+storeColumns+` FROM Store ORDER BY storeID`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return database.ScanAll(rows, scanStore)
}

func (r *storePostgres) ListStoresByManager(ctx context.Context, managerID int64) ([]*Store, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+storeColumns+`
		FROM Store WHERE managerID = $1 ORDER BY storeID`, managerID)
	if err != nil {
		return nil, fmt.Errorf("list managed stores: %w", err)
	}
	return database.ScanAll(rows, scanStore)
}

func (r *storePostgres) GetStoreByID(ctx context.Context, id int64) (*Store, error) {
	rows, err := r.db.Query(ctx, `SELECT `+storeColumns+` FROM Store WHERE storeID = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrStoreNotFound
	}
	return scanStore(rows[0])
}

// ── Product ───────────────────────────────────────────────────────────────────

type productPostgres struct{ db database.DB }

func NewProductPostgresRepository(db database.DB) ProductRepository { return &productPostgres{db: db} }

func (r *productPostgres) ListProducts(ctx context.Context, storeID int64) ([]*Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM Product WHERE storeID = $1 ORDER BY productName`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return database.ScanAll(rows, scanProduct)
}

func (r *productPostgres) GetProduct(ctx context.Context, storeID int64, name string) (*Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM Product WHERE storeID = $1 AND productName = $2`, storeID, name)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrProductNotFound
	}
	return scanProduct(rows[0])
}

// ApplyUpdate inserts the ProductUpdates row and the field change inside a single transaction.
func (r *productPostgres) ApplyUpdate(ctx context.Context, managerID, storeID int64, name string, change ProductChange, at time.Time) (*ProductUpdate, error) {
	pu := &ProductUpdate{ManagerID: managerID, StoreID: storeID, ProductName: name, UpdatedOn: at}

	err := r.db.InTx(ctx, func(q database.Querier) error {
		rows, err := q.Query(ctx, `
			INSERT INTO ProductUpdates (managerID, storeID, productName, updatedOn)
			VALUES ($1, $2, $3, $4)
			RETURNING updateNumber`, managerID, storeID, name, at)
		if err != nil {
			return fmt.Errorf("insert product update: %w", err)
		}
		if len(rows) != 1 {
			return fmt.Errorf("insert product update: expected one row, got %d", len(rows))
		}
		if err := rows[0].Scan(&pu.UpdateNumber); err != nil {
			return err
		}

		var n int64
		switch change.Field {
		case FieldUnits:
			n, err = q.Exec(ctx, `UPDATE Product SET numberOfUnits = $1 WHERE storeID = $2 AND productName = $3`,
				change.Units, storeID, name)
		case FieldPrice:
			n, err = q.Exec(ctx, `UPDATE Product SET pricePerUnit = $1 WHERE storeID = $2 AND productName = $3`,
				change.Price.String(), storeID, name)
		default:
			return fmt.Errorf("unsupported product field %d", change.Field)
		}
		if err != nil {
			return fmt.Errorf("update product %s: %w", change.Field, err)
		}
		if n == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pu, nil
}

// ── Warehouse ─────────────────────────────────────────────────────────────────

type warehousePostgres struct{ db database.Querier }

func NewWarehousePostgresRepository(db database.Querier) WarehouseRepository {
	return &warehousePostgres{db: db}
}

func (r *warehousePostgres) ListWarehouses(ctx context.Context) ([]*Warehouse, error) {
	rows, err := r.db.Query(ctx, `SELECT `+warehouseColumns+` FROM Warehouse ORDER BY WarehouseID`)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return database.ScanAll(rows, scanWarehouse)
}

func (r *warehousePostgres) GetWarehouse(ctx context.Context, id int64) (*Warehouse, error) {
	rows, err := r.db.Query(ctx, `SELECT `+warehouseColumns+` FROM Warehouse WHERE WarehouseID = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrWarehouseNotFound
	}
	return scanWarehouse(rows[0])
}
