package order

import "time"

// MaxUnitsPerOrder caps a single order line.
const MaxUnitsPerOrder = 1000

// RecentLimit is how many orders the history screen shows.
const RecentLimit = 5

// Order is immutable once created.
type Order struct {
	OrderNumber  int64
	CustomerID   int64
	StoreID      int64
	ProductName  string
	UnitsOrdered int
	OrderTime    time.Time
}

// Summary is an order joined with its store name for the history screen.
type Summary struct {
	OrderNumber  int64
	OrderTime    time.Time
	StoreName    string
	ProductName  string
	UnitsOrdered int
}
