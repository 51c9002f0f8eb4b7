package report

import "time"

// Limit bounds every report.
const Limit = 5

// UpdateEntry is one row of the recent product updates report.
type UpdateEntry struct {
	UpdateNumber int64
	StoreName    string
	ProductName  string
	UpdatedOn    time.Time
}

// ProductPopularity is the units ordered of a product at one store.
type ProductPopularity struct {
	ProductName  string
	StoreName    string
	UnitsOrdered int
}

// CustomerPopularity is the units a customer ordered from one store.
type CustomerPopularity struct {
	CustomerName string
	StoreName    string
	UnitsOrdered int
}

// StoreManager pairs a store with the user managing it.
type StoreManager struct {
	StoreID     int64
	StoreName   string
	ManagerID   int64
	ManagerName string
}
