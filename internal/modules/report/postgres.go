package report

import (
	"context"
	"fmt"

	"github.com/georgemunganga/retail/internal/database"
)

type postgresRepo struct{ db database.Querier }

func NewPostgresRepository(db database.Querier) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) RecentUpdates(ctx context.Context, managerID int64, limit int) ([]*UpdateEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pu.updateNumber, s.name, pu.productName, pu.updatedOn
		FROM ProductUpdates pu
		JOIN Store s ON s.storeID = pu.storeID
		WHERE $1 = 0 OR pu.managerID = $1
		ORDER BY pu.updateNumber DESC
		LIMIT $2`, managerID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent updates: %w", err)
	}
	return database.ScanAll(rows, func(row database.Row) (*UpdateEntry, error) {
		e := &UpdateEntry{}
		return e, row.Scan(&e.UpdateNumber, &e.StoreName, &e.ProductName, &e.UpdatedOn)
	})
}

func (r *postgresRepo) PopularProducts(ctx context.Context, managerID int64, limit int) ([]*ProductPopularity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.productName, s.name, SUM(o.unitsOrdered) AS units
		FROM Orders o
		JOIN Store s ON s.storeID = o.storeID
		WHERE $1 = 0 OR s.managerID = $1
		GROUP BY o.productName, s.storeID, s.name
		ORDER BY units DESC, o.productName
		LIMIT $2`, managerID, limit)
	if err != nil {
		return nil, fmt.Errorf("popular products: %w", err)
	}
	return database.ScanAll(rows, func(row database.Row) (*ProductPopularity, error) {
		p := &ProductPopularity{}
		return p, row.Scan(&p.ProductName, &p.StoreName, &p.UnitsOrdered)
	})
}

func (r *postgresRepo) PopularCustomers(ctx context.Context, managerID int64, limit int) ([]*CustomerPopularity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.name, s.name, SUM(o.unitsOrdered) AS units
		FROM Orders o
		JOIN Users u ON u.userID = o.customerID
		JOIN Store s ON s.storeID = o.storeID
		WHERE $1 = 0 OR s.managerID = $1
		GROUP BY u.userID, u.name, s.storeID, s.name
		ORDER BY units DESC, u.name
		LIMIT $2`, managerID, limit)
	if err != nil {
		return nil, fmt.Errorf("popular customers: %w", err)
	}
	return database.ScanAll(rows, func(row database.Row) (*CustomerPopularity, error) {
		c := &CustomerPopularity{}
		return c, row.Scan(&c.CustomerName, &c.StoreName, &c.UnitsOrdered)
	})
}

func (r *postgresRepo) StoreManagers(ctx context.Context) ([]*StoreManager, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.storeID, s.name, u.userID, u.name
		FROM Store s
		JOIN Users u ON u.userID = s.managerID
		ORDER BY s.storeID`)
	if err != nil {
		return nil, fmt.Errorf("store managers: %w", err)
	}
	return database.ScanAll(rows, func(row database.Row) (*StoreManager, error) {
		m := &StoreManager{}
		return m, row.Scan(&m.StoreID, &m.StoreName, &m.ManagerID, &m.ManagerName)
	})
}
