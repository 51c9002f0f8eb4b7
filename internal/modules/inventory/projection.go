package inventory

import "github.com/georgemunganga/retail/internal/database"

const (
	storeColumns     = `storeID, name, latitude, longitude, managerID`
	productColumns   = `storeID, productName, pricePerUnit, numberOfUnits`
	warehouseColumns = `WarehouseID, latitude, longitude`
)

func scanStore(row database.Row) (*Store, error) {
	s := &Store{}
	if err := row.Scan(&s.ID, &s.Name, &s.Location.Lat, &s.Location.Lon); err != nil {
		return nil, err
	}
	// stores without a manager have a NULL managerID
	if raw, err := row.Text(4); err != nil {
		return nil, err
	} else if raw != "" {
		if s.ManagerID, err = row.Int64(4); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func scanProduct(row database.Row) (*Product, error) {
	p := &Product{}
	if err := row.Scan(&p.StoreID, &p.Name, &p.PricePerUnit, &p.NumberOfUnits); err != nil {
		return nil, err
	}
	return p, nil
}

func scanWarehouse(row database.Row) (*Warehouse, error) {
	w := &Warehouse{}
	if err := row.Scan(&w.ID, &w.Location.Lat, &w.Location.Lon); err != nil {
		return nil, err
	}
	return w, nil
}
