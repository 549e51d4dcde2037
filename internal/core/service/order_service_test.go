package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

// Mock OrderRepository
type mockOrderRepo struct {
	mu        sync.Mutex
	orders    []domain.Order
	nextID    int
	insertErr error
	listErr   error
}

func (m *mockOrderRepo) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if m.insertErr != nil {
		return domain.Order{}, m.insertErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	order.ID = fmt.Sprintf("order-%d", m.nextID)
	m.orders = append(m.orders, order)
	return order, nil
}

func (m *mockOrderRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Reverse insertion order, then stable-sort by time descending, so
	// equal timestamps come back newest-insert-first like the real store.
	out := make([]domain.Order, len(m.orders))
	for i, order := range m.orders {
		out[len(m.orders)-1-i] = order
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderTime.After(out[j].OrderTime)
	})
	return out, nil
}

func TestSubmit_AssignsIDAndTimestamp(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewOrderService(repo)

	before := time.Now().UTC()
	order, err := svc.Submit(context.Background(), OrderDraft{
		StudentName: "Asha",
		Stall:       "Juice Bar",
		Item:        "Mango Juice",
		Quantity:    2,
	})
	after := time.Now().UTC()

	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if order.ID == "" {
		t.Error("expected a server-assigned id")
	}
	if order.OrderTime.Before(before) || order.OrderTime.After(after) {
		t.Errorf("expected orderTime between %v and %v, got %v", before, after, order.OrderTime)
	}
	if order.OrderTime.Location() != time.UTC {
		t.Errorf("expected UTC orderTime, got %v", order.OrderTime.Location())
	}
	if order.StudentName != "Asha" || order.Stall != "Juice Bar" || order.Item != "Mango Juice" || order.Quantity != 2 {
		t.Errorf("expected draft fields unchanged, got %+v", order)
	}
}

func TestSubmit_FieldsStoredVerbatim(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewOrderService(repo)

	order, err := svc.Submit(context.Background(), OrderDraft{
		StudentName: "  Asha  ",
		Stall:       "Juice Bar",
		Item:        "Mango Juice",
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// Trimming is only an emptiness check; stored values are untouched.
	if order.StudentName != "  Asha  " {
		t.Errorf("expected untrimmed student name, got %q", order.StudentName)
	}
}

func TestSubmit_DistinctIDs(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewOrderService(repo)

	draft := OrderDraft{StudentName: "Asha", Stall: "Juice Bar", Item: "Mango Juice", Quantity: 1}

	first, err := svc.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := svc.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both were %s", first.ID)
	}
}

func TestSubmit_Validation(t *testing.T) {
	cases := []struct {
		name  string
		draft OrderDraft
	}{
		{"missing student name", OrderDraft{Stall: "Juice Bar", Item: "Mango Juice", Quantity: 1}},
		{"whitespace student name", OrderDraft{StudentName: "   ", Stall: "Juice Bar", Item: "Mango Juice", Quantity: 1}},
		{"missing stall", OrderDraft{StudentName: "Asha", Item: "Mango Juice", Quantity: 1}},
		{"missing item", OrderDraft{StudentName: "Asha", Stall: "Juice Bar", Quantity: 1}},
		{"zero quantity", OrderDraft{StudentName: "Asha", Stall: "Juice Bar", Item: "Mango Juice", Quantity: 0}},
		{"negative quantity", OrderDraft{StudentName: "Asha", Stall: "Juice Bar", Item: "Mango Juice", Quantity: -2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockOrderRepo{}
			svc := NewOrderService(repo)

			_, err := svc.Submit(context.Background(), tc.draft)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got: %v", err)
			}
			if len(repo.orders) != 0 {
				t.Error("invalid draft must not reach the store")
			}
		})
	}
}

func TestSubmit_StorageError(t *testing.T) {
	storeErr := errors.New("store down")
	repo := &mockOrderRepo{insertErr: storeErr}
	svc := NewOrderService(repo)

	_, err := svc.Submit(context.Background(), OrderDraft{
		StudentName: "Asha", Stall: "Juice Bar", Item: "Mango Juice", Quantity: 1,
	})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got: %v", err)
	}
	if errors.Is(err, ErrInvalidOrder) {
		t.Error("storage failure must not look like a validation failure")
	}
}

func TestList_Empty(t *testing.T) {
	svc := NewOrderService(&mockOrderRepo{})

	orders, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if orders == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewOrderService(repo)

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)}
	idx := 0
	svc.now = func() time.Time {
		ts := times[idx]
		idx++
		return ts
	}

	for i, item := range []string{"Idli Sambar", "Masala Dosa", "Poha"} {
		if _, err := svc.Submit(context.Background(), OrderDraft{
			StudentName: "Asha", Stall: "Breakfast Express", Item: item, Quantity: i + 1,
		}); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}

	orders, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].OrderTime.After(orders[i-1].OrderTime) {
			t.Errorf("orders not sorted most recent first at index %d", i)
		}
	}
	if orders[0].Item != "Poha" {
		t.Errorf("expected most recent order first, got %q", orders[0].Item)
	}
}

func TestList_StorageError(t *testing.T) {
	storeErr := errors.New("store down")
	svc := NewOrderService(&mockOrderRepo{listErr: storeErr})

	_, err := svc.List(context.Background())
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got: %v", err)
	}
}
