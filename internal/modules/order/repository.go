package order

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound   = errors.New("product not found at store")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Repository defines order data storage.
type Repository interface {
	// CreateOrder re-reads the stock under a row lock and inserts the order in one transaction.
	CreateOrder(ctx context.Context, o *Order) error
	ListRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]*Summary, error)
}
