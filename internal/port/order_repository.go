package port

import (
	"context"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

type OrderRepository interface {
	// InsertOrder persists a new order and returns it with the
	// store-assigned id
	InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error)

	// ListOrders returns every stored order, most recent first
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
