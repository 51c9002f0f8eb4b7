package supply

import "context"

// Repository defines supply request storage.
type Repository interface {
	CreateRequest(ctx context.Context, r *Request) error
}
