package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
	"github.com/ssv8317/canteen-ordering/internal/port"
)

var ErrInvalidOrder = errors.New("invalid order")

// OrderDraft is a client submission before the server assigns id and
// timestamp. Any id or order time the client sent never makes it this far.
type OrderDraft struct {
	StudentName string
	Stall       string
	Item        string
	Quantity    int
}

type OrderService struct {
	orders port.OrderRepository
	now    func() time.Time
}

func NewOrderService(orders port.OrderRepository) *OrderService {
	return &OrderService{
		orders: orders,
		now:    time.Now,
	}
}

// Submit validates the draft, stamps the server's current UTC time, and
// persists the order. The stored fields are the draft's values verbatim;
// trimming happens only for the emptiness check.
func (s *OrderService) Submit(ctx context.Context, draft OrderDraft) (domain.Order, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		StudentName: draft.StudentName,
		Stall:       draft.Stall,
		Item:        draft.Item,
		Quantity:    draft.Quantity,
		OrderTime:   s.now().UTC(),
	}

	stored, err := s.orders.InsertOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	zap.L().Sugar().Infof("order %s created for %q", stored.ID, stored.StudentName)

	return stored, nil
}

// List returns every order, most recent first. An empty store is an empty
// slice, never an error.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func validateDraft(draft OrderDraft) error {
	if strings.TrimSpace(draft.StudentName) == "" {
		return fmt.Errorf("%w: student name is required", ErrInvalidOrder)
	}
	if draft.Stall == "" {
		return fmt.Errorf("%w: stall is required", ErrInvalidOrder)
	}
	if draft.Item == "" {
		return fmt.Errorf("%w: item is required", ErrInvalidOrder)
	}
	if draft.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidOrder)
	}
	return nil
}
