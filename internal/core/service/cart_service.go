package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
	"github.com/ssv8317/canteen-ordering/internal/port"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCartItem = errors.New("invalid cart item")
)

// CartService owns session cart state behind an explicit load/save
// boundary. Carts are never stored in the order collection; checkout is the
// only path from a cart to the order store.
type CartService struct {
	carts  port.CartRepository
	orders *OrderService
}

func NewCartService(carts port.CartRepository, orders *OrderService) *CartService {
	return &CartService{
		carts:  carts,
		orders: orders,
	}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, line domain.CartLine) (domain.Cart, error) {
	if line.ItemID == "" {
		return domain.Cart{}, fmt.Errorf("%w: item id is required", ErrInvalidCartItem)
	}
	if line.Quantity < 1 {
		return domain.Cart{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidCartItem)
	}

	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.AddLine(line)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.SetQuantity(itemID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.RemoveLine(itemID)
	})
}

func (s *CartService) SetPickupTime(ctx context.Context, sessionID, pickupTime string) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.PickupTime = pickupTime
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Checkout submits one order per cart line and then clears the cart. A
// failed line leaves the cart stored and already-submitted lines persisted;
// there is no cross-line transaction.
func (s *CartService) Checkout(ctx context.Context, sessionID, studentName string) ([]domain.Order, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	orders := make([]domain.Order, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		order, err := s.orders.Submit(ctx, OrderDraft{
			StudentName: studentName,
			Stall:       line.Stall,
			Item:        line.Name,
			Quantity:    line.Quantity,
		})
		if err != nil {
			return nil, fmt.Errorf("submit cart line %q: %w", line.ItemID, err)
		}
		orders = append(orders, order)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// Orders are already persisted; a stale cart is the lesser problem.
		zap.L().Sugar().Warnf("clear cart for session %s after checkout: %v", sessionID, err)
	}

	return orders, nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(cart *domain.Cart)) (domain.Cart, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	fn(&cart)

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}
