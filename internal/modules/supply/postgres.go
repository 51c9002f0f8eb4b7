package supply

import (
	"context"
	"fmt"

	"github.com/georgemunganga/retail/internal/database"
)

type postgresRepo struct{ db database.Querier }

func NewPostgresRepository(db database.Querier) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateRequest(ctx context.Context, req *Request) error {
	n, err := r.db.Exec(ctx, `
		INSERT INTO ProductSupplyRequests (managerID, warehouseID, storeID, productName, unitsRequested)
		VALUES ($1, $2, $3, $4, $5)`,
		req.ManagerID, req.WarehouseID, req.StoreID, req.ProductName, req.UnitsRequested)
	if err != nil {
		return fmt.Errorf("insert supply request: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("insert supply request: %d rows affected", n)
	}
	return nil
}
