package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/retail/internal/database"
	"github.com/georgemunganga/retail/internal/database/databasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockFake(units string) *databasetest.Fake {
	return &databasetest.Fake{OnQuery: func(q string, _ []any) ([]database.Row, error) {
		if strings.Contains(q, "FOR UPDATE") {
			if units == "" {
				return nil, nil
			}
			return []database.Row{{units}}, nil
		}
		return []database.Row{{"41"}}, nil
	}}
}

func TestCreateOrderLocksThenInserts(t *testing.T) {
	fake := stockFake("10")
	repo := NewPostgresRepository(fake)
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	o := &Order{CustomerID: 1, StoreID: 4, ProductName: "Milk", UnitsOrdered: 5, OrderTime: at}
	require.NoError(t, repo.CreateOrder(context.Background(), o))

	assert.EqualValues(t, 41, o.OrderNumber)
	assert.Equal(t, 1, fake.Commits)
	require.Len(t, fake.Queries, 2)
	assert.Contains(t, fake.Queries[0].Query, "FOR UPDATE")
	assert.True(t, fake.Queries[1].InTx)
	assert.Equal(t, []any{int64(1), int64(4), "Milk", 5, at}, fake.Queries[1].Args)
	assert.Equal(t, 1, fake.Writes())
}

func TestCreateOrderRejectsWhenStockTooLow(t *testing.T) {
	fake := stockFake("3")
	repo := NewPostgresRepository(fake)

	err := repo.CreateOrder(context.Background(), &Order{CustomerID: 1, StoreID: 4, ProductName: "Milk", UnitsOrdered: 5})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 1, fake.Rollbacks)
	assert.Zero(t, fake.Writes())
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	fake := stockFake("")
	repo := NewPostgresRepository(fake)

	err := repo.CreateOrder(context.Background(), &Order{CustomerID: 1, StoreID: 4, ProductName: "Ghost", UnitsOrdered: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Zero(t, fake.Writes())
}

func TestListRecentByCustomer(t *testing.T) {
	fake := &databasetest.Fake{OnQuery: func(string, []any) ([]database.Row, error) {
		return []database.Row{
			{"9", "2024-06-01 09:30:00", "Corner    ", "Milk", "2"},
			{"8", "2024-05-30 18:00:00", "Corner    ", "Bread", "1"},
		}, nil
	}}
	repo := NewPostgresRepository(fake)

	got, err := repo.ListRecentByCustomer(context.Background(), 1, RecentLimit)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.EqualValues(t, 9, got[0].OrderNumber)
	assert.Equal(t, "Corner", got[0].StoreName)
	assert.Equal(t, []any{int64(1), RecentLimit}, fake.Queries[0].Args)
}
