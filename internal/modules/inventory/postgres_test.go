package inventory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/retail/internal/database"
	"github.com/georgemunganga/retail/internal/database/databasetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyUpdateRunsInOneTransaction(t *testing.T) {
	fake := &databasetest.Fake{OnQuery: func(string, []any) ([]database.Row, error) {
		return []database.Row{{"17"}}, nil
	}}
	repo := NewProductPostgresRepository(fake)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	pu, err := repo.ApplyUpdate(context.Background(), 2, 1, "Milk",
		ProductChange{Field: FieldPrice, Price: decimal.RequireFromString("4.20")}, at)
	require.NoError(t, err)

	assert.EqualValues(t, 17, pu.UpdateNumber)
	assert.Equal(t, 1, fake.Commits)
	require.Len(t, fake.Queries, 1)
	require.Len(t, fake.Execs, 1)
	assert.True(t, fake.Queries[0].InTx)
	assert.True(t, fake.Execs[0].InTx)
	assert.Contains(t, fake.Execs[0].Query, "pricePerUnit")
	assert.Equal(t, []any{"4.2", int64(1), "Milk"}, fake.Execs[0].Args)
}

func TestApplyUpdateRollsBackWhenProductMissing(t *testing.T) {
	fake := &databasetest.Fake{
		OnQuery: func(string, []any) ([]database.Row, error) { return []database.Row{{"1"}}, nil },
		OnExec:  func(string, []any) (int64, error) { return 0, nil },
	}
	repo := NewProductPostgresRepository(fake)

	_, err := repo.ApplyUpdate(context.Background(), 2, 1, "Ghost", ProductChange{Field: FieldUnits, Units: 3}, time.Now())
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, 1, fake.Rollbacks)
	assert.Zero(t, fake.Commits)
}

func TestScanStoreWithoutManager(t *testing.T) {
	fake := &databasetest.Fake{OnQuery: func(q string, _ []any) ([]database.Row, error) {
		if strings.Contains(q, "WHERE storeID") {
			return []database.Row{{"5", "Kiosk     ", "1.5", "2.5", ""}}, nil
		}
		return []database.Row{{"5", "Kiosk", "x", "2.5", "1"}}, nil
	}}
	repo := NewStorePostgresRepository(fake)

	s, err := repo.GetStoreByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Kiosk", s.Name)
	assert.Zero(t, s.ManagerID)

	_, err = repo.ListStores(context.Background())
	assert.Error(t, err)
}

func TestGetProductNotFound(t *testing.T) {
	_, err := NewProductPostgresRepository(&databasetest.Fake{}).GetProduct(context.Background(), 1, "x")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = NewWarehousePostgresRepository(&databasetest.Fake{}).GetWarehouse(context.Background(), 1)
	assert.ErrorIs(t, err, ErrWarehouseNotFound)
}
