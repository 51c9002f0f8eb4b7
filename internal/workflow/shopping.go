package workflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/order"
	"github.com/georgemunganga/retail/internal/modules/user"
)

var errInvalidStore = apperr.NotFound("Invalid Store...")

// BrowseStores lists the stores the actor can reach.
func (e *Engine) BrowseStores(ctx context.Context, actor *user.User) error {
	_, err := e.reachableStores(ctx, actor)
	return err
}

// ViewProducts lists the products of one reachable store.
func (e *Engine) ViewProducts(ctx context.Context, actor *user.User) error {
	store, err := e.selectStore(ctx, actor)
	if err != nil {
		return err
	}
	return e.showProducts(ctx, store)
}

// PlaceOrder walks store, product and quantity selection, then places the order.
func (e *Engine) PlaceOrder(ctx context.Context, actor *user.User) error {
	store, err := e.selectStore(ctx, actor)
	if err != nil {
		return err
	}
	if err := e.showProducts(ctx, store); err != nil {
		return err
	}
	product, err := e.selectProduct(ctx, store)
	if err != nil {
		return err
	}

	raw, err := e.io.Prompt(ctx, "Enter number of units: ")
	if err != nil {
		return err
	}
	units, err := order.ParseQuantity(raw)
	if err != nil {
		return err
	}

	o, err := e.svc.Orders.PlaceOrder(ctx, actor, order.PlaceOrderRequest{Store: store, Product: product, Units: units})
	if err != nil {
		return err
	}
	e.io.Clear()
	e.io.Printf("%s: Placed an order for %d %s units from %s\n",
		o.OrderTime.Format(timeLayout), o.UnitsOrdered, o.ProductName, store.Name)
	return nil
}

// RecentOrders shows the actor's latest orders.
func (e *Engine) RecentOrders(ctx context.Context, actor *user.User) error {
	orders, err := e.svc.Orders.RecentOrders(ctx, actor)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.OrderNumber, 10),
			o.OrderTime.Format(timeLayout),
			o.StoreName,
			o.ProductName,
			strconv.Itoa(o.UnitsOrdered),
		})
	}
	e.io.Table([]string{"Order #", "Time", "Store", "Product", "Units"}, rows)
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (e *Engine) reachableStores(ctx context.Context, actor *user.User) ([]inventory.StoreDistance, error) {
	stores, err := e.svc.Inventory.BrowseStores(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []string{strconv.FormatInt(s.ID, 10), s.Name, fmt.Sprintf("%.2f", s.Distance)})
	}
	e.io.Table([]string{"Store ID", "Name", "Distance"}, rows)
	return stores, nil
}

// selectStore only accepts a store from the actor's browse set.
func (e *Engine) selectStore(ctx context.Context, actor *user.User) (*inventory.Store, error) {
	stores, err := e.reachableStores(ctx, actor)
	if err != nil {
		return nil, err
	}
	raw, err := e.io.Prompt(ctx, "Enter store ID: ")
	if err != nil {
		return nil, err
	}
	id, ok := inventory.ParseID(raw)
	if !ok {
		return nil, errInvalidStore
	}
	store, ok := inventory.FindStore(stores, id)
	if !ok {
		return nil, errInvalidStore
	}
	return store, nil
}

func (e *Engine) showProducts(ctx context.Context, store *inventory.Store) error {
	products, err := e.svc.Inventory.ListProducts(ctx, store.ID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.Name, p.PricePerUnit.StringFixed(2), strconv.Itoa(p.NumberOfUnits)})
	}
	e.io.Printf("Products at %s\n", store.Name)
	e.io.Table([]string{"Product", "Price", "Units"}, rows)
	return nil
}

func (e *Engine) selectProduct(ctx context.Context, store *inventory.Store) (*inventory.Product, error) {
	name, err := e.io.Prompt(ctx, "Insert Product: ")
	if err != nil {
		return nil, err
	}
	return e.svc.Inventory.GetProduct(ctx, store.ID, name)
}
