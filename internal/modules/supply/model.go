package supply

// MaxUnitsPerRequest is the largest quantity a manager may request in one go.
const MaxUnitsPerRequest = 100

// Request asks a warehouse to ship units of a product to a managed store.
type Request struct {
	ManagerID      int64
	WarehouseID    int64
	StoreID        int64
	ProductName    string
	UnitsRequested int
}
