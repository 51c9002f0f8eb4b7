package report

import "context"

// AllManagers widens a report scope to every store.
const AllManagers int64 = 0

// Repository defines the read-only report queries. managerID narrows each
// report to that manager's stores unless it is AllManagers.
type Repository interface {
	RecentUpdates(ctx context.Context, managerID int64, limit int) ([]*UpdateEntry, error)
	PopularProducts(ctx context.Context, managerID int64, limit int) ([]*ProductPopularity, error)
	PopularCustomers(ctx context.Context, managerID int64, limit int) ([]*CustomerPopularity, error)
	StoreManagers(ctx context.Context) ([]*StoreManager, error)
}
