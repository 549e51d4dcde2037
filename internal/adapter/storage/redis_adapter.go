package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

const (
	cartKeyPrefix = "cart:"
	cartTTL       = 24 * time.Hour
)

// RedisCartAdapter stores each session cart as one JSON value under
// cart:<sessionID>. Abandoned carts expire with the key TTL.
type RedisCartAdapter struct {
	client *redis.Client
}

func NewRedisCartAdapter(client *redis.Client) *RedisCartAdapter {
	return &RedisCartAdapter{client: client}
}

type cartRecord struct {
	Lines      []cartLineRecord `json:"lines"`
	PickupTime string           `json:"pickupTime"`
}

type cartLineRecord struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Stall    string  `json:"stall"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (r *RedisCartAdapter) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	raw, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}

	var record cartRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart: %w", err)
	}

	cart := domain.Cart{PickupTime: record.PickupTime}
	for _, line := range record.Lines {
		cart.Lines = append(cart.Lines, domain.CartLine(line))
	}
	return cart, nil
}

func (r *RedisCartAdapter) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	record := cartRecord{PickupTime: cart.PickupTime}
	for _, line := range cart.Lines {
		record.Lines = append(record.Lines, cartLineRecord(line))
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKeyPrefix+sessionID, raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("set cart: %w", err)
	}
	return nil
}

func (r *RedisCartAdapter) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("del cart: %w", err)
	}
	return nil
}
