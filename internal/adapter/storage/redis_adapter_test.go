package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestLoad_MissingCart(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)

	client.Del(ctx, "cart:missing-session")

	cart, err := adapter.Load(ctx, "missing-session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 0 || cart.PickupTime != "" {
		t.Errorf("expected empty cart, got %+v", cart)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)

	client.Del(ctx, "cart:roundtrip-session")

	cart := domain.Cart{
		Lines: []domain.CartLine{
			{ItemID: "201", Name: "Mango Juice", Stall: "Fresh Juice Bar", Price: 50, Quantity: 2},
			{ItemID: "302", Name: "Masala Dosa", Stall: "Breakfast Express", Price: 60, Quantity: 1},
		},
		PickupTime: "12:30",
	}

	if err := adapter.Save(ctx, "roundtrip-session", cart); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := adapter.Load(ctx, "roundtrip-session")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(loaded.Lines))
	}
	if loaded.Lines[0] != cart.Lines[0] || loaded.Lines[1] != cart.Lines[1] {
		t.Errorf("lines changed in roundtrip: %+v", loaded.Lines)
	}
	if loaded.PickupTime != "12:30" {
		t.Errorf("expected pickup time 12:30, got %q", loaded.PickupTime)
	}

	client.Del(ctx, "cart:roundtrip-session")
}

func TestClear_RemovesCart(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)

	cart := domain.Cart{Lines: []domain.CartLine{{ItemID: "101", Name: "Paneer Frankie", Stall: "Frankie Corner", Price: 80, Quantity: 1}}}
	if err := adapter.Save(ctx, "clear-session", cart); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := adapter.Clear(ctx, "clear-session"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	loaded, err := adapter.Load(ctx, "clear-session")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Lines) != 0 {
		t.Errorf("expected cart gone, got %+v", loaded.Lines)
	}
}
