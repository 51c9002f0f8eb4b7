package workflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/supply"
	"github.com/georgemunganga/retail/internal/modules/user"
)

// UpdateProduct changes one product field per round until the actor stops.
func (e *Engine) UpdateProduct(ctx context.Context, actor *user.User) error {
	for {
		if err := e.updateProductOnce(ctx, actor); err != nil {
			return err
		}
		e.io.Println("Do you want to update more products?")
		e.io.Println("1. Yes 2. No")
		again, err := e.io.ReadInt(ctx, choicePrompt)
		if err != nil {
			return err
		}
		if again != 1 {
			return nil
		}
	}
}

func (e *Engine) updateProductOnce(ctx context.Context, actor *user.User) error {
	store, err := e.selectManagedStore(ctx, actor)
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

	e.io.Println("What would you like to update?")
	e.io.Println("1. Number of Units \n2. Price per Unit")
	field, err := e.io.ReadInt(ctx, choicePrompt)
	if err != nil {
		return err
	}

	var change inventory.ProductChange
	switch inventory.Field(field) {
	case inventory.FieldUnits:
		raw, err := e.io.Prompt(ctx, "Number of units: ")
		if err != nil {
			return err
		}
		if change, err = inventory.ParseUnits(raw); err != nil {
			return err
		}
	case inventory.FieldPrice:
		raw, err := e.io.Prompt(ctx, "Price per Unit: ")
		if err != nil {
			return err
		}
		if change, err = inventory.ParsePrice(raw); err != nil {
			return err
		}
	default:
		return apperr.Validation("Invalid Value")
	}

	pu, err := e.svc.Inventory.UpdateProduct(ctx, actor, store, product.Name, change)
	if err != nil {
		return err
	}
	e.io.Clear()
	e.io.Printf("%s: Successfully modified product %s %s to %s from store %s.\n",
		pu.UpdatedOn.Format(timeLayout), product.Name, change.Field, change.Value(), store.Name)
	return nil
}

// PlaceSupplyRequest asks a warehouse to restock a product of a managed store.
func (e *Engine) PlaceSupplyRequest(ctx context.Context, actor *user.User) error {
	store, err := e.selectManagedStore(ctx, actor)
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

	warehouses, err := e.svc.Inventory.Warehouses(ctx, store.Location)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(warehouses))
	for _, w := range warehouses {
		rows = append(rows, []string{strconv.FormatInt(w.ID, 10), fmt.Sprintf("%.2f", w.Distance)})
	}
	e.io.Table([]string{"Warehouse ID", "Distance"}, rows)

	raw, err := e.io.Prompt(ctx, "Enter warehouse ID: ")
	if err != nil {
		return err
	}
	id, ok := inventory.ParseID(raw)
	if !ok {
		return apperr.NotFound("The warehouse with the specified ID does not exist")
	}
	warehouse, err := e.svc.Inventory.GetWarehouse(ctx, id)
	if err != nil {
		return err
	}

	raw, err = e.io.Prompt(ctx, "Enter number of units: ")
	if err != nil {
		return err
	}
	units, err := supply.ParseUnits(raw)
	if err != nil {
		return err
	}

	req, err := e.svc.Supply.Place(ctx, actor, supply.PlaceRequest{Store: store, Product: product, Warehouse: warehouse, Units: units})
	if err != nil {
		return err
	}
	e.io.Clear()
	e.io.Printf("Ordered %d units of %s from Warehouse #%d to be sent to %s.\n",
		req.UnitsRequested, req.ProductName, req.WarehouseID, store.Name)
	return nil
}

// selectManagedStore lists the actor's stores and fetches the chosen one.
func (e *Engine) selectManagedStore(ctx context.Context, actor *user.User) (*inventory.Store, error) {
	stores, err := e.svc.Inventory.ManagedStores(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []string{strconv.FormatInt(s.ID, 10), s.Name})
	}
	e.io.Table([]string{"Store ID", "Name"}, rows)

	raw, err := e.io.Prompt(ctx, "Enter store ID: ")
	if err != nil {
		return nil, err
	}
	id, ok := inventory.ParseID(raw)
	if !ok {
		return nil, apperr.NotFound("This store does not exist or is not managed by you. Exiting...")
	}
	return e.svc.Inventory.ManagedStore(ctx, actor, id)
}
