package order

import (
	"context"
	"fmt"

	"github.com/georgemunganga/retail/internal/database"
)

type postgresRepo struct{ db database.DB }

func NewPostgresRepository(db database.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder checks stock and inserts the order inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	return r.db.InTx(ctx, func(q database.Querier) error {
		rows, err := q.Query(ctx, `
			SELECT numberOfUnits FROM Product
			WHERE storeID = $1 AND productName = $2
			FOR UPDATE`, o.StoreID, o.ProductName)
		if err != nil {
			return fmt.Errorf("lock product: %w", err)
		}
		if len(rows) == 0 {
			return ErrProductNotFound
		}
		stock, err := rows[0].Int(0)
		if err != nil {
			return err
		}
		if o.UnitsOrdered > stock {
			return ErrInsufficientStock
		}

		rows, err = q.Query(ctx, `
			INSERT INTO Orders (customerID, storeID, productName, unitsOrdered, orderTime)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING orderNumber`,
			o.CustomerID, o.StoreID, o.ProductName, o.UnitsOrdered, o.OrderTime)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if len(rows) != 1 {
			return fmt.Errorf("insert order: expected one row, got %d", len(rows))
		}
		return rows[0].Scan(&o.OrderNumber)
	})
}

func (r *postgresRepo) ListRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]*Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.orderNumber, o.orderTime, s.name, o.productName, o.unitsOrdered
		FROM Orders o
		JOIN Store s ON s.storeID = o.storeID
		WHERE o.customerID = $1
		ORDER BY o.orderNumber DESC
		LIMIT $2`, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return database.ScanAll(rows, scanSummary)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanSummary(row database.Row) (*Summary, error) {
	s := &Summary{}
	if err := row.Scan(&s.OrderNumber, &s.OrderTime, &s.StoreName, &s.ProductName, &s.UnitsOrdered); err != nil {
		return nil, err
	}
	return s, nil
}
