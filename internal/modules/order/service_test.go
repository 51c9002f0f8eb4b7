package order

import (
	"context"
	"testing"
	"time"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/geo"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOrders struct {
	stock  map[string]int
	orders []*Order
	err    error
}

func (m *memOrders) CreateOrder(_ context.Context, o *Order) error {
	if m.err != nil {
		return m.err
	}
	stock, ok := m.stock[o.ProductName]
	if !ok {
		return ErrProductNotFound
	}
	if o.UnitsOrdered > stock {
		return ErrInsufficientStock
	}
	o.OrderNumber = int64(len(m.orders) + 1)
	m.orders = append(m.orders, o)
	return nil
}

func (m *memOrders) ListRecentByCustomer(_ context.Context, customerID int64, limit int) ([]*Summary, error) {
	var out []*Summary
	for i := len(m.orders) - 1; i >= 0 && len(out) < limit; i-- {
		o := m.orders[i]
		if o.CustomerID == customerID {
			out = append(out, &Summary{OrderNumber: o.OrderNumber, ProductName: o.ProductName, UnitsOrdered: o.UnitsOrdered})
		}
	}
	return out, nil
}

var (
	shopper = &user.User{ID: 1, Name: "carol", Role: user.RoleCustomer, Location: geo.Point{Lat: 10, Lon: 10}}
	admin   = &user.User{ID: 3, Name: "root", Role: user.RoleAdmin, Location: geo.Point{Lat: 10, Lon: 10}}
	near    = &inventory.Store{ID: 1, Name: "Corner", Location: geo.Point{Lat: 12, Lon: 12}, ManagerID: 2}
	far     = &inventory.Store{ID: 2, Name: "Outpost", Location: geo.Point{Lat: 90, Lon: 90}, ManagerID: 2}
)

func milk(store *inventory.Store, units int) *inventory.Product {
	return &inventory.Product{StoreID: store.ID, Name: "Milk", PricePerUnit: decimal.RequireFromString("1.25"), NumberOfUnits: units}
}

func newTestService(repo Repository) *service {
	return &service{
		repo:   repo,
		radius: inventory.DefaultRadius,
		now:    func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) },
	}
}

func TestPlaceOrder(t *testing.T) {
	repo := &memOrders{stock: map[string]int{"Milk": 10}}
	svc := newTestService(repo)

	o, err := svc.PlaceOrder(context.Background(), shopper, PlaceOrderRequest{Store: near, Product: milk(near, 10), Units: 4})
	require.NoError(t, err)

	assert.EqualValues(t, 1, o.OrderNumber)
	assert.Equal(t, shopper.ID, o.CustomerID)
	assert.Equal(t, near.ID, o.StoreID)
	assert.Equal(t, 4, o.UnitsOrdered)
	assert.Equal(t, 2024, o.OrderTime.Year())
}

func TestPlaceOrderRejectsMoreThanStock(t *testing.T) {
	repo := &memOrders{stock: map[string]int{"Milk": 3}}
	svc := newTestService(repo)

	_, err := svc.PlaceOrder(context.Background(), shopper, PlaceOrderRequest{Store: near, Product: milk(near, 3), Units: 5})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "Not enough stock at store to process order....", apperr.MessageOf(err))
	assert.Empty(t, repo.orders)
}

func TestPlaceOrderRejectsWhenStockShrankConcurrently(t *testing.T) {
	// the product snapshot says 10 units, but the locked row has only 2
	repo := &memOrders{stock: map[string]int{"Milk": 2}}
	svc := newTestService(repo)

	_, err := svc.PlaceOrder(context.Background(), shopper, PlaceOrderRequest{Store: near, Product: milk(near, 10), Units: 5})
	assert.Equal(t, "Not enough stock at store to process order....", apperr.MessageOf(err))
	assert.Empty(t, repo.orders)
}

func TestPlaceOrderValidation(t *testing.T) {
	repo := &memOrders{stock: map[string]int{"Milk": 5000}}
	svc := newTestService(repo)
	ctx := context.Background()

	tests := []struct {
		name string
		user *user.User
		req  PlaceOrderRequest
		kind apperr.Kind
	}{
		{"anonymous", nil, PlaceOrderRequest{Store: near, Product: milk(near, 5000), Units: 1}, apperr.KindUnauthorized},
		{"zero units", shopper, PlaceOrderRequest{Store: near, Product: milk(near, 5000), Units: 0}, apperr.KindValidation},
		{"negative units", shopper, PlaceOrderRequest{Store: near, Product: milk(near, 5000), Units: -2}, apperr.KindValidation},
		{"over cap", shopper, PlaceOrderRequest{Store: near, Product: milk(near, 5000), Units: MaxUnitsPerOrder + 1}, apperr.KindValidation},
		{"store out of range", shopper, PlaceOrderRequest{Store: far, Product: milk(far, 5000), Units: 1}, apperr.KindNotFound},
		{"product of another store", shopper, PlaceOrderRequest{Store: near, Product: milk(far, 5000), Units: 1}, apperr.KindNotFound},
		{"no store", shopper, PlaceOrderRequest{Product: milk(near, 5000), Units: 1}, apperr.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(ctx, tt.user, tt.req)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
	assert.Empty(t, repo.orders)
}

func TestPlaceOrderAdminIgnoresRadius(t *testing.T) {
	repo := &memOrders{stock: map[string]int{"Milk": 5}}
	svc := newTestService(repo)

	_, err := svc.PlaceOrder(context.Background(), admin, PlaceOrderRequest{Store: far, Product: milk(far, 5), Units: 5})
	require.NoError(t, err)
	assert.Len(t, repo.orders, 1)
}

func TestPlaceOrderBackendFailure(t *testing.T) {
	svc := newTestService(&memOrders{err: assert.AnError})

	_, err := svc.PlaceOrder(context.Background(), shopper, PlaceOrderRequest{Store: near, Product: milk(near, 5), Units: 1})
	assert.True(t, apperr.Is(err, apperr.KindBackend))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	repo := &memOrders{stock: map[string]int{"Milk": 100}}
	svc := newTestService(repo)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := svc.PlaceOrder(ctx, shopper, PlaceOrderRequest{Store: near, Product: milk(near, 100), Units: i})
		require.NoError(t, err)
	}

	got, err := svc.RecentOrders(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, got, RecentLimit)
	assert.Equal(t, 7, got[0].UnitsOrdered)
	assert.Equal(t, 3, got[4].UnitsOrdered)

	_, err = svc.RecentOrders(ctx, nil)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseQuantity("a dozen")
	assert.Equal(t, "Invalid Value...", apperr.MessageOf(err))
}
