package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// OrderRepository provides snapshots of the order log. ReadAll returns the
// log in append order; WriteAll replaces the whole blob (the only write this
// backend performs is a status transition).
type OrderRepository interface {
	ReadAll(ctx context.Context) ([]models.Order, error)
	WriteAll(ctx context.Context, orders []models.Order) error
}

type RedisOrderStore struct {
	client *redis.Client
	key    string
}

func NewOrderStore(client *redis.Client) *RedisOrderStore {
	return &RedisOrderStore{client: client, key: OrdersKey}
}

func (s *RedisOrderStore) ReadAll(ctx context.Context) ([]models.Order, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		// No orders yet. The storefront only creates the key on first checkout.
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.key, err)
	}
	return DecodeOrders(raw)
}

func (s *RedisOrderStore) WriteAll(ctx context.Context, orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, s.key, err)
	}
	return nil
}

// DecodeOrders parses the raw order log blob. Optional fields get their
// documented defaults through the zero value (total 0, no items, empty
// status); a blob that is not a JSON array of orders is ErrCorrupt.
func DecodeOrders(raw []byte) ([]models.Order, error) {
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, OrdersKey, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
