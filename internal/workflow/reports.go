package workflow

import (
	"context"
	"strconv"

	"github.com/georgemunganga/retail/internal/modules/user"
)

func (e *Engine) RecentUpdates(ctx context.Context, actor *user.User) error {
	entries, err := e.svc.Reports.RecentUpdates(ctx, actor)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, u := range entries {
		rows = append(rows, []string{strconv.FormatInt(u.UpdateNumber, 10), u.StoreName, u.ProductName, u.UpdatedOn.Format(timeLayout)})
	}
	e.io.Table([]string{"Update #", "Store", "Product", "Updated On"}, rows)
	return nil
}

func (e *Engine) PopularProducts(ctx context.Context, actor *user.User) error {
	entries, err := e.svc.Reports.PopularProducts(ctx, actor)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, p := range entries {
		rows = append(rows, []string{p.ProductName, p.StoreName, strconv.Itoa(p.UnitsOrdered)})
	}
	e.io.Table([]string{"Product", "Store", "Units Ordered"}, rows)
	return nil
}

func (e *Engine) PopularCustomers(ctx context.Context, actor *user.User) error {
	entries, err := e.svc.Reports.PopularCustomers(ctx, actor)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, c := range entries {
		rows = append(rows, []string{c.CustomerName, c.StoreName, strconv.Itoa(c.UnitsOrdered)})
	}
	e.io.Table([]string{"Customer", "Store", "Units Ordered"}, rows)
	return nil
}

// ViewManagers lists every store with its manager. Admin only.
func (e *Engine) ViewManagers(ctx context.Context, actor *user.User) error {
	entries, err := e.svc.Reports.StoreManagers(ctx, actor)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, m := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(m.StoreID, 10), m.StoreName,
			strconv.FormatInt(m.ManagerID, 10), m.ManagerName,
		})
	}
	e.io.Table([]string{"Store ID", "Store", "Manager ID", "Manager"}, rows)
	return nil
}
